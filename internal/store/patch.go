package store

import "github.com/Liban-hassan-noor/eastlify-client/internal/domain"

// Pure reducers for the optimistic local patches applied after successful
// mutations. Each returns a new slice and never touches the input, so they
// can be tested without any network in play.

// prependProduct puts a newly created product at the front of the
// inventory.
func prependProduct(products []domain.Product, p domain.Product) []domain.Product {
	out := make([]domain.Product, 0, len(products)+1)
	out = append(out, p)
	return append(out, products...)
}

// patchProductByID swaps in the server's version of an updated product.
// Entries with other IDs are untouched; an unknown ID leaves the slice
// unchanged rather than inventing an entry.
func patchProductByID(products []domain.Product, p domain.Product) []domain.Product {
	out := append([]domain.Product(nil), products...)
	for i := range out {
		if out[i].ID == p.ID {
			out[i] = p
			break
		}
	}
	return out
}

// removeProductByID drops the matching entry.
func removeProductByID(products []domain.Product, id string) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for i := range products {
		if products[i].ID != id {
			out = append(out, products[i])
		}
	}
	return out
}

// patchShopByID swaps in the server's version of an updated shop.
func patchShopByID(shops []domain.Shop, shop domain.Shop) []domain.Shop {
	out := append([]domain.Shop(nil), shops...)
	for i := range out {
		if out[i].ID == shop.ID {
			out[i] = shop
			break
		}
	}
	return out
}

// removeShopByID drops the matching entry.
func removeShopByID(shops []domain.Shop, id string) []domain.Shop {
	out := make([]domain.Shop, 0, len(shops))
	for i := range shops {
		if shops[i].ID != id {
			out = append(out, shops[i])
		}
	}
	return out
}

// mergeShopStats folds a partial stat delta into a shop. Only fields the
// server echoed are applied; the server never sends the full shop here.
func mergeShopStats(shop *domain.Shop, stats domain.ShopStats) {
	if stats.TotalCalls != nil {
		shop.TotalCalls = *stats.TotalCalls
	}
	if stats.Orders != nil {
		shop.Orders = *stats.Orders
	}
	if stats.Sales != nil {
		shop.Sales = *stats.Sales
	}
}

// pushActivity prepends an entry to the newest-first view and evicts the
// oldest past the cap.
func pushActivity(activities []domain.Activity, a domain.Activity) []domain.Activity {
	out := make([]domain.Activity, 0, len(activities)+1)
	out = append(out, a)
	out = append(out, activities...)
	if len(out) > activityCap {
		out = out[:activityCap]
	}
	return out
}
