// Package domain defines the entities exchanged with the Eastlify backend.
// JSON tags match the backend wire format exactly; the client never invents
// field names.
package domain

import "time"

// Shop is a marketplace shop as returned by the shop endpoints.
// The listing endpoint returns these as summaries; the detail endpoint
// returns the same shape fully populated.
type Shop struct {
	ID           string            `json:"id"`
	Owner        string            `json:"owner,omitempty"`
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	Street       string            `json:"street"`
	Phone        string            `json:"phone"`
	WhatsApp     string            `json:"whatsapp,omitempty"`
	Categories   []string          `json:"categories"`
	ProfileImage string            `json:"profileImage,omitempty"`
	CoverImage   string            `json:"coverImage,omitempty"`
	WorkingHours map[string]string `json:"workingHours,omitempty"`
	Rating       float64           `json:"rating"`
	ReviewCount  int               `json:"reviewCount"`
	TotalCalls   int               `json:"totalCalls"`
	Orders       int               `json:"orders"`
	Sales        int               `json:"sales"`
	CreatedAt    time.Time         `json:"createdAt,omitzero"`
}

// HasCategory reports whether the shop carries the given category tag.
func (s *Shop) HasCategory(category string) bool {
	for _, c := range s.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ShopStats is the partial stat delta returned by the activity and sale
// endpoints. Pointers distinguish "not echoed" from zero: the store merges
// only the fields the server actually returned.
type ShopStats struct {
	TotalCalls *int `json:"totalCalls,omitempty"`
	Orders     *int `json:"orders,omitempty"`
	Sales      *int `json:"sales,omitempty"`
}
