package store

import (
	"context"

	"github.com/Liban-hassan-noor/eastlify-client/internal/api"
	"github.com/Liban-hassan-noor/eastlify-client/internal/domain"
)

// Reviews pass straight through to the API. Review state is page-local on
// the shop detail view, so the store caches nothing here.

// SubmitReview posts a review for a shop.
func (s *Store) SubmitReview(ctx context.Context, req api.ReviewRequest) Result {
	if err := s.validate.Validate(req); err != nil {
		return fail(err)
	}
	if _, err := s.api.CreateReview(ctx, req); err != nil {
		return fail(err)
	}
	return ok()
}

// ShopReviews fetches a page of reviews for a shop.
func (s *Store) ShopReviews(ctx context.Context, shopID string, q api.ReviewPageQuery) (*api.ReviewPage, error) {
	return s.api.ShopReviews(ctx, shopID, q)
}

// ReviewStats fetches the rating aggregate for a shop.
func (s *Store) ReviewStats(ctx context.Context, shopID string) (*domain.ReviewStats, error) {
	return s.api.ReviewStats(ctx, shopID)
}

// FlagReview reports a review for moderation.
func (s *Store) FlagReview(ctx context.Context, reviewID, reason string) Result {
	if err := s.api.FlagReview(ctx, reviewID, reason); err != nil {
		return fail(err)
	}
	return ok()
}
