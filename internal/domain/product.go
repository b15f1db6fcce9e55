package domain

import "time"

// Product is a shop listing as returned by the product endpoints.
type Product struct {
	ID             string    `json:"id"`
	Shop           string    `json:"shop"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Price          float64   `json:"price"`
	CompareAtPrice float64   `json:"compareAtPrice,omitempty"`
	Category       string    `json:"category,omitempty"`
	Tags           []string  `json:"tags,omitempty"`
	Images         []string  `json:"images,omitempty"`
	Stock          int       `json:"stock"`
	InStock        bool      `json:"inStock"`
	Sizes          []string  `json:"sizes,omitempty"`
	Colors         []string  `json:"colors,omitempty"`
	CreatedAt      time.Time `json:"createdAt,omitzero"`
}
