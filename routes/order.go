package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/nexxdevv/sunset-traders-api/controllers/order"
	"github.com/nexxdevv/sunset-traders-api/middleware"
)

// SetupOrderRoutes registers the order history (JWT-protected) and the order
// broadcast websocket.
func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("/orders", orderControllers.GetUserOrders(deps.Docs)) // GET /user/orders
	}

	r.GET("/orders/ws", orderControllers.OrderWebSocketHandler) // GET /orders/ws
}
