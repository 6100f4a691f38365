package catalog

import "github.com/nexxdevv/sunset-traders-api/models"

// CategoryAll bypasses category filtering.
const CategoryAll = "All"

// Catalog is the immutable product table, loaded once at startup.
type Catalog struct {
	products []models.Product
	byID     map[string]models.Product
}

// Load builds the catalog from the static seed data.
func Load() *Catalog {
	return New(seedProducts)
}

// New builds a catalog from the given products, preserving their order.
func New(products []models.Product) *Catalog {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}
}

// All returns every product in catalog order. Callers must not mutate the
// returned slice.
func (c *Catalog) All() []models.Product {
	return c.products
}

// ByID looks up a single product.
func (c *Catalog) ByID(id string) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Categories returns the distinct category labels in first-seen order,
// prefixed with the CategoryAll sentinel.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	categories := []string{CategoryAll}
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}
