package routes

import (
	"github.com/gin-gonic/gin"
	checkoutControllers "github.com/nexxdevv/sunset-traders-api/controllers/checkout"
)

// SetupCheckoutRoutes registers the checkout flow: session creation plus the
// success/cancel redirect targets the payment processor sends the client
// back to.
func SetupCheckoutRoutes(r *gin.Engine, deps Deps) {
	checkoutGroup := r.Group("/checkout")
	{
		checkoutGroup.POST("/", checkoutControllers.BeginCheckout(deps.Orchestrator))      // POST /checkout
		checkoutGroup.GET("/success", checkoutControllers.CheckoutSuccess(deps.Orchestrator)) // GET /checkout/success?session_id=
		checkoutGroup.GET("/cancel", checkoutControllers.CheckoutCancel(deps.Orchestrator))   // GET /checkout/cancel
	}
}
