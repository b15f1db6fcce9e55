package mockapi

import (
	"sync"
	"time"

	"github.com/Liban-hassan-noor/eastlify-client/internal/domain"
	domainerrors "github.com/Liban-hassan-noor/eastlify-client/internal/errors"
	"github.com/Liban-hassan-noor/eastlify-client/internal/id"
	"github.com/Liban-hassan-noor/eastlify-client/internal/normalize"
)

// userRecord is an owner account plus its credential hash.
type userRecord struct {
	user         domain.User
	passwordHash string
	shopID       string
}

// dataset is the whole in-memory backend state. Slim on purpose: maps by
// ID plus insertion-order slices so listings come back in a stable order.
type dataset struct {
	mu sync.RWMutex

	users   map[string]*userRecord
	byEmail map[string]string

	shops     map[string]*domain.Shop
	shopOrder []string

	products     map[string]*domain.Product
	productOrder []string

	// Newest first, by shop.
	activities map[string][]domain.Activity
	reviews    map[string][]domain.Review
	reviewShop map[string]string
}

func newDataset() *dataset {
	return &dataset{
		users:      make(map[string]*userRecord),
		byEmail:    make(map[string]string),
		shops:      make(map[string]*domain.Shop),
		products:   make(map[string]*domain.Product),
		activities: make(map[string][]domain.Activity),
		reviews:    make(map[string][]domain.Review),
		reviewShop: make(map[string]string),
	}
}

// createUser registers an owner account with its shop. Callers hold no
// lock.
func (d *dataset) createUser(user domain.User, passwordHash string, shop domain.Shop) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	email := normalize.SearchKey(user.Email)
	if _, taken := d.byEmail[email]; taken {
		return domainerrors.Conflict("An account with this email already exists")
	}

	d.users[user.ID] = &userRecord{user: user, passwordHash: passwordHash, shopID: shop.ID}
	d.byEmail[email] = user.ID
	d.shops[shop.ID] = &shop
	d.shopOrder = append(d.shopOrder, shop.ID)
	return nil
}

// userByEmail resolves an account by email, case-insensitively.
func (d *dataset) userByEmail(email string) (*userRecord, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	userID, found := d.byEmail[normalize.SearchKey(email)]
	if !found {
		return nil, false
	}
	rec := d.users[userID]
	return rec, rec != nil
}

// profile returns a user with their shop embedded.
func (d *dataset) profile(userID string) (*domain.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	rec, found := d.users[userID]
	if !found {
		return nil, domainerrors.NotFound("User not found")
	}
	user := rec.user
	if shop, ok := d.shops[rec.shopID]; ok {
		clone := *shop
		user.Shop = &clone
	}
	return &user, nil
}

// updateProfile applies non-nil fields and returns the updated profile.
func (d *dataset) updateProfile(userID string, name, phone, email *string) (*domain.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	rec, found := d.users[userID]
	if !found {
		return nil, domainerrors.NotFound("User not found")
	}
	if email != nil {
		key := normalize.SearchKey(*email)
		if owner, taken := d.byEmail[key]; taken && owner != userID {
			return nil, domainerrors.Conflict("An account with this email already exists")
		}
		delete(d.byEmail, normalize.SearchKey(rec.user.Email))
		d.byEmail[key] = userID
		rec.user.Email = *email
	}
	if name != nil {
		rec.user.Name = *name
	}
	if phone != nil {
		rec.user.Phone = *phone
	}
	user := rec.user
	if shop, ok := d.shops[rec.shopID]; ok {
		clone := *shop
		user.Shop = &clone
	}
	return &user, nil
}

// listShops returns shops matching the query filters, insertion order.
func (d *dataset) listShops(category, street, search string) []domain.Shop {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]domain.Shop, 0, len(d.shopOrder))
	for _, shopID := range d.shopOrder {
		shop := d.shops[shopID]
		if category != "" && !shop.HasCategory(category) {
			continue
		}
		if street != "" && shop.Street != street {
			continue
		}
		if search != "" && !shopMatchesSearch(shop, search) {
			continue
		}
		out = append(out, *shop)
	}
	return out
}

func shopMatchesSearch(shop *domain.Shop, search string) bool {
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

func (d *dataset) shop(shopID string) (*domain.Shop, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	shop, found := d.shops[shopID]
	if !found {
		return nil, domainerrors.NotFound("Shop not found")
	}
	clone := *shop
	return &clone, nil
}

// ownedShop returns the shop belonging to the user.
func (d *dataset) ownedShop(userID string) (*domain.Shop, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	rec, found := d.users[userID]
	if !found {
		return nil, domainerrors.NotFound("User not found")
	}
	shop, found := d.shops[rec.shopID]
	if !found {
		return nil, domainerrors.NotFound("Shop not found")
	}
	clone := *shop
	return &clone, nil
}

// owns reports whether the user owns the shop.
func (d *dataset) owns(userID, shopID string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	rec, found := d.users[userID]
	return found && rec.shopID == shopID
}

// mutateShop applies fn to the shop under the write lock and returns the
// updated copy.
func (d *dataset) mutateShop(shopID string, fn func(*domain.Shop)) (*domain.Shop, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	shop, found := d.shops[shopID]
	if !found {
		return nil, domainerrors.NotFound("Shop not found")
	}
	fn(shop)
	clone := *shop
	return &clone, nil
}

// deleteShop removes a shop with its products, activities and reviews.
func (d *dataset) deleteShop(shopID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, found := d.shops[shopID]; !found {
		return domainerrors.NotFound("Shop not found")
	}
	delete(d.shops, shopID)
	d.shopOrder = remove(d.shopOrder, shopID)
	for productID, p := range d.products {
		if p.Shop == shopID {
			delete(d.products, productID)
			d.productOrder = remove(d.productOrder, productID)
		}
	}
	for reviewID, shop := range d.reviewShop {
		if shop == shopID {
			delete(d.reviewShop, reviewID)
		}
	}
	delete(d.activities, shopID)
	delete(d.reviews, shopID)
	return nil
}

// listProducts returns products matching the query filters.
func (d *dataset) listProducts(shopID, category, search string) []domain.Product {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]domain.Product, 0, len(d.productOrder))
	for _, productID := range d.productOrder {
		p := d.products[productID]
		if shopID != "" && p.Shop != shopID {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		if search != "" && !normalize.ContainsFold(p.Name, search) &&
			!normalize.ContainsFold(p.Description, search) {
			continue
		}
		out = append(out, *p)
	}
	return out
}

func (d *dataset) product(productID string) (*domain.Product, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	p, found := d.products[productID]
	if !found {
		return nil, domainerrors.NotFound("Product not found")
	}
	clone := *p
	return &clone, nil
}

func (d *dataset) createProduct(p domain.Product) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.products[p.ID] = &p
	d.productOrder = append(d.productOrder, p.ID)
}

// mutateProduct applies fn to the product under the write lock.
func (d *dataset) mutateProduct(productID string, fn func(*domain.Product)) (*domain.Product, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	p, found := d.products[productID]
	if !found {
		return nil, domainerrors.NotFound("Product not found")
	}
	fn(p)
	clone := *p
	return &clone, nil
}

func (d *dataset) deleteProduct(productID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, found := d.products[productID]; !found {
		return domainerrors.NotFound("Product not found")
	}
	delete(d.products, productID)
	d.productOrder = remove(d.productOrder, productID)
	return nil
}

// recordActivity appends an activity entry and bumps the shop stats,
// returning the entry and the partial stat delta it caused.
func (d *dataset) recordActivity(shopID string, kind domain.ActivityType, item string, amount int) (*domain.Activity, *domain.ShopStats, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	shop, found := d.shops[shopID]
	if !found {
		return nil, nil, domainerrors.NotFound("Shop not found")
	}

	activityID, err := id.Generate("act")
	if err != nil {
		return nil, nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "generate activity id")
	}

	entry := domain.Activity{
		ID:        activityID,
		Shop:      shopID,
		Type:      kind,
		Item:      item,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
	d.activities[shopID] = append([]domain.Activity{entry}, d.activities[shopID]...)

	stats := &domain.ShopStats{}
	switch kind {
	case domain.ActivitySale:
		shop.Orders++
		shop.Sales += amount
		orders, sales := shop.Orders, shop.Sales
		stats.Orders = &orders
		stats.Sales = &sales
	default:
		shop.TotalCalls++
		calls := shop.TotalCalls
		stats.TotalCalls = &calls
	}

	return &entry, stats, nil
}

// listActivities returns a shop's activity log, newest first.
func (d *dataset) listActivities(shopID string) []domain.Activity {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]domain.Activity(nil), d.activities[shopID]...)
}

// createReview stores a review and refreshes the shop's rating aggregate.
func (d *dataset) createReview(review domain.Review) (*domain.Review, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	shop, found := d.shops[review.Shop]
	if !found {
		return nil, domainerrors.NotFound("Shop not found")
	}

	d.reviews[review.Shop] = append([]domain.Review{review}, d.reviews[review.Shop]...)
	d.reviewShop[review.ID] = review.Shop

	total := 0
	for _, r := range d.reviews[review.Shop] {
		total += r.Rating
	}
	shop.ReviewCount = len(d.reviews[review.Shop])
	shop.Rating = float64(total) / float64(shop.ReviewCount)

	return &review, nil
}

// listReviews returns all of a shop's reviews, newest first.
func (d *dataset) listReviews(shopID string) []domain.Review {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]domain.Review(nil), d.reviews[shopID]...)
}

// flagReview marks a review for moderation.
func (d *dataset) flagReview(reviewID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	shopID, found := d.reviewShop[reviewID]
	if !found {
		return domainerrors.NotFound("Review not found")
	}
	reviews := d.reviews[shopID]
	for i := range reviews {
		if reviews[i].ID == reviewID {
			reviews[i].Flagged = true
			return nil
		}
	}
	return domainerrors.NotFound("Review not found")
}

// reviewStats aggregates a shop's reviews.
func (d *dataset) reviewStats(shopID string) domain.ReviewStats {
	d.mu.RLock()
	defer d.mu.RUnlock()

	stats := domain.ReviewStats{
		Distribution: map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0},
	}
	total := 0
	for _, r := range d.reviews[shopID] {
		stats.Total++
		total += r.Rating
		switch r.Rating {
		case 1:
			stats.Distribution["1"]++
		case 2:
			stats.Distribution["2"]++
		case 3:
			stats.Distribution["3"]++
		case 4:
			stats.Distribution["4"]++
		case 5:
			stats.Distribution["5"]++
		}
	}
	if stats.Total > 0 {
		stats.Average = float64(total) / float64(stats.Total)
	}
	return stats
}

func remove(ids []string, target string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != target {
			out = append(out, v)
		}
	}
	return out
}
