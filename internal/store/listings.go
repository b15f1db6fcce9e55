package store

import (
	"context"

	"github.com/Liban-hassan-noor/eastlify-client/internal/api"
)

// FetchShopListings replaces the public listings with the given shop's
// products. Failures keep the stale listings and are only logged; the shop
// detail page renders what it has.
func (s *Store) FetchShopListings(ctx context.Context, shopID string) {
	seq := s.begin(resListings)

	products, err := s.api.Products(ctx, api.ProductQuery{Shop: shopID})

	s.mu.Lock()
	if !s.isLatest(resListings, seq) {
		s.mu.Unlock()
		return
	}
	if err != nil {
		s.mu.Unlock()
		s.logger.Warn("shop listings fetch failed", "shop", shopID, "error", err)
		return
	}
	s.listings = products
	s.mu.Unlock()
	s.notify()
}

// FetchMyListings replaces the owner's inventory. Failures keep the stale
// inventory and are only logged.
func (s *Store) FetchMyListings(ctx context.Context) {
	token := s.currentToken()
	if token == "" {
		return
	}

	seq := s.begin(resMyListings)

	products, err := s.api.MyProducts(ctx, token)

	s.mu.Lock()
	if !s.isLatest(resMyListings, seq) {
		s.mu.Unlock()
		return
	}
	if err != nil {
		s.mu.Unlock()
		s.logger.Warn("inventory fetch failed", "error", err)
		return
	}
	s.myListings = products
	s.mu.Unlock()
	s.notify()
}

// AddListing creates a product and prepends the server's version of it to
// the inventory, avoiding a full re-fetch.
func (s *Store) AddListing(ctx context.Context, form api.ProductForm) Result {
	token := s.currentToken()
	if token == "" {
		return Result{Message: "you must be signed in"}
	}

	product, err := s.api.CreateProduct(ctx, token, form)
	if err != nil {
		return fail(err)
	}

	s.mu.Lock()
	s.myListings = prependProduct(s.myListings, *product)
	s.mu.Unlock()
	s.notify()
	return ok()
}

// UpdateListing updates a product and patches the matching inventory entry
// with the document the server returned.
func (s *Store) UpdateListing(ctx context.Context, id string, form api.ProductForm) Result {
	token := s.currentToken()
	if token == "" {
		return Result{Message: "you must be signed in"}
	}

	product, err := s.api.UpdateProduct(ctx, token, id, form)
	if err != nil {
		return fail(err)
	}

	s.mu.Lock()
	s.myListings = patchProductByID(s.myListings, *product)
	s.mu.Unlock()
	s.notify()
	return ok()
}

// DeleteListing deletes a product and removes the matching inventory entry.
func (s *Store) DeleteListing(ctx context.Context, id string) Result {
	token := s.currentToken()
	if token == "" {
		return Result{Message: "you must be signed in"}
	}

	if err := s.api.DeleteProduct(ctx, token, id); err != nil {
		return fail(err)
	}

	s.mu.Lock()
	s.myListings = removeProductByID(s.myListings, id)
	s.mu.Unlock()
	s.notify()
	return ok()
}
