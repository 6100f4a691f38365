package productControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nexxdevv/sunset-traders-api/catalog"
)

const defaultSuggestionCount = 6

// GET /products?category=sunglasses
func GetProducts(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.DefaultQuery("category", catalog.CategoryAll)
		c.JSON(http.StatusOK, cat.FilterByCategory(category))
	}
}

// GET /products/:id
func GetProductByID(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := cat.ByID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GET /products/categories
func GetCategories(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cat.Categories())
	}
}

// GET /products/search?q=airpods
// An empty query returns random suggestions instead of the whole catalog.
func SearchProducts(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")
		if query == "" {
			n, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultSuggestionCount)))
			if err != nil || n < 1 {
				n = defaultSuggestionCount
			}
			c.JSON(http.StatusOK, gin.H{"suggestions": cat.Suggestions(n)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": cat.Search(query)})
	}
}
