package store

import (
	"context"

	"github.com/Liban-hassan-noor/eastlify-client/internal/api"
	"github.com/Liban-hassan-noor/eastlify-client/internal/domain"
)

// FetchShops replaces the shop collection from the server. Filtering after
// the initial load happens client-side via FilteredShops; the query is only
// used for the bootstrap fetch. On failure the stale collection is kept and
// ShopsError carries the message for the retry UI.
func (s *Store) FetchShops(ctx context.Context, q api.ShopQuery) {
	seq := s.begin(resShops)

	shops, err := s.api.Shops(ctx, q)

	s.mu.Lock()
	if !s.isLatest(resShops, seq) {
		s.mu.Unlock()
		return
	}
	if err != nil {
		s.shopsError = fail(err).Message
		s.mu.Unlock()
		s.logger.Warn("shop list fetch failed", "error", err)
		s.notify()
		return
	}
	s.shops = shops
	s.shopsError = ""
	s.mu.Unlock()
	s.notify()
}

// FilteredShops returns the shops matching the filter, applied entirely
// client-side against the cached collection.
func (s *Store) FilteredShops(f Filter) []domain.Shop {
	s.mu.Lock()
	shops := append([]domain.Shop(nil), s.shops...)
	favorites := append([]string(nil), s.favorites...)
	s.mu.Unlock()
	return filterShops(shops, f, favorites)
}

// UpdateShop sends changed shop fields to the server. On success the
// returned document replaces the owner's embedded shop and patches the
// matching entry in the public collection.
func (s *Store) UpdateShop(ctx context.Context, update api.ShopUpdate) Result {
	s.mu.Lock()
	token := s.token
	var shopID string
	if s.currentUser != nil && s.currentUser.Shop != nil {
		shopID = s.currentUser.Shop.ID
	}
	s.mu.Unlock()

	if token == "" || shopID == "" {
		return Result{Message: "you must be signed in with a shop"}
	}

	shop, err := s.api.UpdateShop(ctx, token, shopID, update)
	if err != nil {
		return fail(err)
	}

	s.mu.Lock()
	// The session may have ended while the request was in flight; the
	// public collection still takes the patch, the owner view only if
	// the same shop is still signed in.
	if s.currentUser != nil && s.currentUser.Shop != nil && s.currentUser.Shop.ID == shop.ID {
		s.currentUser.Shop = shop
	}
	s.shops = patchShopByID(s.shops, *shop)
	s.mu.Unlock()
	s.notify()
	return ok()
}

// DeleteShop removes a shop. The entry disappears from the public
// collection, and the owner's embedded shop is cleared if it was theirs.
func (s *Store) DeleteShop(ctx context.Context, id string) Result {
	token := s.currentToken()
	if token == "" {
		return Result{Message: "you must be signed in"}
	}

	if err := s.api.DeleteShop(ctx, token, id); err != nil {
		return fail(err)
	}

	s.mu.Lock()
	s.shops = removeShopByID(s.shops, id)
	if s.currentUser != nil && s.currentUser.Shop != nil && s.currentUser.Shop.ID == id {
		s.currentUser.Shop = nil
	}
	s.mu.Unlock()
	s.notify()
	return ok()
}
