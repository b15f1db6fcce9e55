package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Liban-hassan-noor/eastlify-client/internal/domain"
)

// ReviewRequest creates a review. Public, no account required.
type ReviewRequest struct {
	Shop    string `json:"shop" validate:"required"`
	Author  string `json:"author" validate:"required,max=100"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}

// ReviewPageQuery selects a page of a shop's reviews.
type ReviewPageQuery struct {
	Page  int    // 1-based; 0 means first page
	Limit int    // 0 means server default (10)
	Sort  string // e.g. "-createdAt" (default), "rating"
}

// ReviewPage is one page of a shop's reviews.
type ReviewPage struct {
	Reviews []domain.Review `json:"reviews"`
	Total   int             `json:"total"`
	Page    int             `json:"page"`
	Pages   int             `json:"pages"`
}

// CreateReview submits a review for a shop.
func (c *Client) CreateReview(ctx context.Context, req ReviewRequest) (*domain.Review, error) {
	var review domain.Review
	if err := c.doJSON(ctx, http.MethodPost, "/reviews", "", req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// ShopReviews fetches a page of reviews for a shop.
func (c *Client) ShopReviews(ctx context.Context, shopID string, q ReviewPageQuery) (*ReviewPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}
	sort := q.Sort
	if sort == "" {
		sort = "-createdAt"
	}

	path := "/reviews/shop/" + shopID +
		query("page", strconv.Itoa(page), "limit", strconv.Itoa(limit), "sort", sort)

	var out ReviewPage
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReviewStats fetches the aggregate rating stats for a shop.
func (c *Client) ReviewStats(ctx context.Context, shopID string) (*domain.ReviewStats, error) {
	var stats domain.ReviewStats
	if err := c.doJSON(ctx, http.MethodGet, "/reviews/shop/"+shopID+"/stats", "", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// FlagReview reports a review for moderation.
func (c *Client) FlagReview(ctx context.Context, reviewID, reason string) error {
	body := struct {
		Reason string `json:"reason"`
	}{Reason: reason}
	return c.doJSON(ctx, http.MethodPost, "/reviews/"+reviewID+"/flag", "", body, nil)
}
