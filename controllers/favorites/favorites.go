package favoritesControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nexxdevv/sunset-traders-api/catalog"
	"github.com/nexxdevv/sunset-traders-api/store"
)

// POST /favorites/:product_id
func AddSavedProduct(users *store.UserStore, cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := cat.ByID(c.Param("product_id"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}
		users.AddSavedProduct(product)
		c.JSON(http.StatusOK, users.SavedProducts())
	}
}

// DELETE /favorites/:product_id
func RemoveSavedProduct(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		users.RemoveSavedProduct(c.Param("product_id"))
		c.JSON(http.StatusOK, users.SavedProducts())
	}
}

// GET /favorites
func GetSavedProducts(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, users.SavedProducts())
	}
}

// DELETE /favorites
func ClearSavedProducts(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		users.ClearSavedProducts()
		c.JSON(http.StatusOK, gin.H{"message": "Saved products cleared"})
	}
}
