package models

import "time"

// CartLineItem is one cart entry. Display fields are denormalized from the
// product at add-time so the cart stays renderable on its own. At most one
// line item exists per product ID; adding the same product again increments
// Quantity instead of appending.
type CartLineItem struct {
	ProductID string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	ImageURL  string    `json:"imageUrl"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

// SavedProduct is a denormalized snapshot of a favorited product.
// Set semantics: a product appears at most once.
type SavedProduct struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl"`
	Category  string  `json:"category"`
}
