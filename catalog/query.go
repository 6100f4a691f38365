package catalog

import (
	"math/rand"
	"strings"

	"github.com/nexxdevv/sunset-traders-api/models"
)

// FilterByCategory returns the products matching category exactly, in
// catalog order. The CategoryAll sentinel returns everything.
func (c *Catalog) FilterByCategory(category string) []models.Product {
	if category == CategoryAll {
		return c.products
	}
	var matches []models.Product
	for _, p := range c.products {
		if p.Category == category {
			matches = append(matches, p)
		}
	}
	return matches
}

// Search returns products whose name, description, or any tag contains the
// query, case-insensitively, in catalog order. An empty query matches
// everything.
func (c *Catalog) Search(query string) []models.Product {
	lower := strings.ToLower(query)
	var matches []models.Product
	for _, p := range c.products {
		if matchesQuery(p, lower) {
			matches = append(matches, p)
		}
	}
	return matches
}

func matchesQuery(p models.Product, lower string) bool {
	if strings.Contains(strings.ToLower(p.Name), lower) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), lower) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), lower) {
			return true
		}
	}
	return false
}

// Suggestions returns up to n random products, offered when the search query
// is empty.
func (c *Catalog) Suggestions(n int) []models.Product {
	if n > len(c.products) {
		n = len(c.products)
	}
	shuffled := make([]models.Product, len(c.products))
	copy(shuffled, c.products)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
