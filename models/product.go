package models

// Product is a single catalog entry. The catalog is loaded once at startup
// and never mutated, so products carry no database bookkeeping fields.
type Product struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Subtitle       string   `json:"subtitle,omitempty"`
	Price          float64  `json:"price"`
	OriginalPrice  float64  `json:"originalPrice,omitempty"`
	Description    string   `json:"description"`
	ImageURL       string   `json:"imageUrl"`
	CarouselImages []string `json:"carouselImages,omitempty"`
	Category       string   `json:"category"`
	OnSale         bool     `json:"onSale,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	DateAdded      string   `json:"dateAdded"`
}
