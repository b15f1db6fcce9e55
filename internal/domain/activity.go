package domain

import "time"

// ActivityType classifies a shop activity log entry.
type ActivityType string

const (
	// ActivityCall is recorded when a customer taps the call button.
	ActivityCall ActivityType = "call"

	// ActivityWhatsApp is recorded when a customer opens a WhatsApp chat.
	ActivityWhatsApp ActivityType = "whatsapp"

	// ActivitySale is recorded by the owner when a sale completes.
	ActivitySale ActivityType = "sale"
)

// Valid reports whether t is a known activity type.
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityCall, ActivityWhatsApp, ActivitySale:
		return true
	}
	return false
}

// Activity is a shop activity log entry. Immutable once recorded; the
// server is the source of truth for full history, the client keeps only a
// bounded most-recent view.
type Activity struct {
	ID        string       `json:"id"`
	Shop      string       `json:"shop"`
	Type      ActivityType `json:"type"`
	Item      string       `json:"item,omitempty"`
	Amount    int          `json:"amount,omitempty"`
	CreatedAt time.Time    `json:"createdAt,omitzero"`
}
