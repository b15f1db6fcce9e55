package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Liban-hassan-noor/eastlify-client/internal/domain"
)

var filterShopsFixture = []domain.Shop{
	{
		ID:          "shop-1",
		Name:        "Al-Amin Textiles",
		Description: "Quality diracs and fabrics",
		Street:      "First Avenue",
		Categories:  []string{"Textiles", "Fashion"},
	},
	{
		ID:         "shop-2",
		Name:       "Digital World Islii",
		Street:     "Garage",
		Categories: []string{"Electronics"},
	},
	{
		ID:          "shop-3",
		Name:        "Madina Scents",
		Description: "Oud and bakhoor",
		Street:      "First Avenue",
		Categories:  []string{"Cosmetics"},
	},
}

func TestFilterShops(t *testing.T) {
	favorites := []string{"shop-2"}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"zero filter matches all", Filter{}, []string{"shop-1", "shop-2", "shop-3"}},
		{"all wildcard matches all", Filter{Category: "All", Street: "All"}, []string{"shop-1", "shop-2", "shop-3"}},
		{"category", Filter{Category: "Electronics"}, []string{"shop-2"}},
		{"street", Filter{Street: "First Avenue"}, []string{"shop-1", "shop-3"}},
		{"search name", Filter{Search: "madina"}, []string{"shop-3"}},
		{"search description", Filter{Search: "bakhoor"}, []string{"shop-3"}},
		{"search category tag", Filter{Search: "fashion"}, []string{"shop-1"}},
		{"search accent folded", Filter{Search: "dirác"}, []string{"shop-1"}},
		{"favorites only", Filter{FavoritesOnly: true}, []string{"shop-2"}},
		{"combined all and", Filter{Street: "First Avenue", Category: "Cosmetics", Search: "oud"}, []string{"shop-3"}},
		{"combined excludes", Filter{Street: "First Avenue", FavoritesOnly: true}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterShops(filterShopsFixture, tt.filter, favorites)
			assert.Equal(t, tt.want, shopIDs(got))
		})
	}
}

// A combined filter must equal the intersection of its parts applied
// one at a time.
func TestFilterShops_Composability(t *testing.T) {
	favorites := []string{"shop-1", "shop-3"}
	combined := Filter{Category: "Textiles", Street: "First Avenue", Search: "dirac", FavoritesOnly: true}

	parts := []Filter{
		{Category: combined.Category},
		{Street: combined.Street},
		{Search: combined.Search},
		{FavoritesOnly: true},
	}

	want := filterShopsFixture
	for _, f := range parts {
		want = filterShops(want, f, favorites)
	}

	got := filterShops(filterShopsFixture, combined, favorites)
	assert.Equal(t, shopIDs(want), shopIDs(got))
	assert.Equal(t, []string{"shop-1"}, shopIDs(got))
}

func shopIDs(shops []domain.Shop) []string {
	ids := make([]string, 0, len(shops))
	for _, s := range shops {
		ids = append(ids, s.ID)
	}
	return ids
}
