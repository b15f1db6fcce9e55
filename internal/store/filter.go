package store

import (
	"slices"

	"github.com/Liban-hassan-noor/eastlify-client/internal/domain"
	"github.com/Liban-hassan-noor/eastlify-client/internal/normalize"
)

// Filter narrows the cached shop collection. Zero-value fields match
// everything; set fields combine with AND.
type Filter struct {
	// Category matches shops carrying the tag. "" and "All" match every
	// shop.
	Category string
	// Street matches the shop's street exactly. "" and "All" match every
	// shop.
	Street string
	// Search is a case and accent folded substring match against name,
	// description, street, and category tags.
	Search string
	// FavoritesOnly keeps only favorited shops.
	FavoritesOnly bool
}

// matchAll is the category/street wildcard the browse UI sends.
const matchAll = "All"

func (f Filter) matches(shop *domain.Shop, favorites []string) bool {
	if f.Category != "" && f.Category != matchAll && !shop.HasCategory(f.Category) {
		return false
	}
	if f.Street != "" && f.Street != matchAll && shop.Street != f.Street {
		return false
	}
	if f.Search != "" && !searchMatches(shop, f.Search) {
		return false
	}
	if f.FavoritesOnly && !slices.Contains(favorites, shop.ID) {
		return false
	}
	return true
}

func searchMatches(shop *domain.Shop, search string) bool {
	if normalize.ContainsFold(shop.Name, search) ||
		normalize.ContainsFold(shop.Description, search) ||
		normalize.ContainsFold(shop.Street, search) {
		return true
	}
	for _, c := range shop.Categories {
		if normalize.ContainsFold(c, search) {
			return true
		}
	}
	return false
}

// filterShops applies the filter to a shop slice. Pure; order is preserved.
func filterShops(shops []domain.Shop, f Filter, favorites []string) []domain.Shop {
	out := make([]domain.Shop, 0, len(shops))
	for i := range shops {
		if f.matches(&shops[i], favorites) {
			out = append(out, shops[i])
		}
	}
	return out
}
