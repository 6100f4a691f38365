package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nexxdevv/sunset-traders-api/docstore"
)

// GET /user/orders
func GetUserOrders(docs docstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID, _ := userIDVal.(string)

		orders, err := docs.OrdersByUser(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
