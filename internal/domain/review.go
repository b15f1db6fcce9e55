package domain

import "time"

// Review is a customer review for a shop. Reviews are public; no account
// is required to leave one.
type Review struct {
	ID        string    `json:"id"`
	Shop      string    `json:"shop"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	Flagged   bool      `json:"flagged,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// ReviewStats aggregates a shop's reviews for the stats endpoint.
// Distribution is keyed by star value ("1".."5").
type ReviewStats struct {
	Average      float64        `json:"average"`
	Total        int            `json:"total"`
	Distribution map[string]int `json:"distribution"`
}
