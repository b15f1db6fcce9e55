package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Liban-hassan-noor/eastlify-client/internal/domain"
)

func intp(v int) *int { return &v }

func TestPrependProduct(t *testing.T) {
	existing := []domain.Product{{ID: "prod-1"}, {ID: "prod-2"}}

	got := prependProduct(existing, domain.Product{ID: "prod-3"})

	assert.Equal(t, []string{"prod-3", "prod-1", "prod-2"}, productIDs(got))
	assert.Len(t, existing, 2, "input must not be mutated")
}

func TestPatchProductByID(t *testing.T) {
	existing := []domain.Product{
		{ID: "prod-1", Name: "Dirac", Price: 800},
		{ID: "prod-2", Name: "Hijab", Price: 500},
	}

	got := patchProductByID(existing, domain.Product{ID: "prod-2", Name: "Hijab Set", Price: 650})

	assert.Equal(t, "Dirac", got[0].Name)
	assert.Equal(t, "Hijab Set", got[1].Name)
	assert.Equal(t, float64(650), got[1].Price)
	assert.Equal(t, "Hijab", existing[1].Name, "input must not be mutated")
}

func TestPatchProductByID_UnknownID(t *testing.T) {
	existing := []domain.Product{{ID: "prod-1"}}

	got := patchProductByID(existing, domain.Product{ID: "prod-9"})

	assert.Equal(t, []string{"prod-1"}, productIDs(got))
}

func TestRemoveProductByID(t *testing.T) {
	existing := []domain.Product{{ID: "prod-1"}, {ID: "prod-2"}, {ID: "prod-3"}}

	got := removeProductByID(existing, "prod-2")

	assert.Equal(t, []string{"prod-1", "prod-3"}, productIDs(got))
	assert.Len(t, existing, 3, "input must not be mutated")
}

func TestPatchShopByID(t *testing.T) {
	existing := []domain.Shop{
		{ID: "shop-1", Name: "Al-Amin Textiles"},
		{ID: "shop-2", Name: "Madina Scents"},
	}

	got := patchShopByID(existing, domain.Shop{ID: "shop-1", Name: "Al-Amin Fabrics"})

	assert.Equal(t, "Al-Amin Fabrics", got[0].Name)
	assert.Equal(t, "Madina Scents", got[1].Name)
}

func TestMergeShopStats_PartialDelta(t *testing.T) {
	shop := &domain.Shop{ID: "shop-1", TotalCalls: 12, Orders: 3, Sales: 1000}

	mergeShopStats(shop, domain.ShopStats{Sales: intp(1500)})

	assert.Equal(t, 1500, shop.Sales)
	assert.Equal(t, 12, shop.TotalCalls, "fields the server did not echo stay put")
	assert.Equal(t, 3, shop.Orders)

	mergeShopStats(shop, domain.ShopStats{TotalCalls: intp(13), Orders: intp(4)})

	assert.Equal(t, 13, shop.TotalCalls)
	assert.Equal(t, 4, shop.Orders)
	assert.Equal(t, 1500, shop.Sales)
}

func TestPushActivity_CapAndOrder(t *testing.T) {
	var activities []domain.Activity
	for i := 0; i < 15; i++ {
		activities = pushActivity(activities, domain.Activity{ID: actID(i)})
		assert.LessOrEqual(t, len(activities), activityCap)
	}

	assert.Len(t, activities, activityCap)
	// Newest first, oldest evicted.
	assert.Equal(t, actID(14), activities[0].ID)
	assert.Equal(t, actID(5), activities[activityCap-1].ID)
}

func productIDs(products []domain.Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func actID(i int) string {
	return "act-" + string(rune('a'+i))
}
