package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nexxdevv/sunset-traders-api/catalog"
	"github.com/nexxdevv/sunset-traders-api/store"
)

type AddToCartInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// POST /cart
func AddToCart(cart *store.CartStore, cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, ok := cat.ByID(input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		quantity := input.Quantity
		if quantity == 0 {
			quantity = 1
		}
		cart.AddToCart(product, quantity)
		c.JSON(http.StatusOK, cart.Items())
	}
}

// POST /cart/:product_id/increment
func IncrementItem(cart *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.IncrementQuantity(c.Param("product_id"))
		c.JSON(http.StatusOK, cart.Items())
	}
}

// POST /cart/:product_id/decrement
func DecrementItem(cart *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.DecrementQuantity(c.Param("product_id"))
		c.JSON(http.StatusOK, cart.Items())
	}
}

// DELETE /cart/:product_id
func DeleteCartItem(cart *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.RemoveItem(c.Param("product_id"))
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /cart
func ClearCart(cart *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.ClearCart()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /cart
func GetCart(cart *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cart.Items())
	}
}
