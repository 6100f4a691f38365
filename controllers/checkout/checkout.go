package checkoutControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nexxdevv/sunset-traders-api/checkout"
)

// POST /checkout
func BeginCheckout(orc *checkout.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, url, err := orc.Begin(c.Request.Context())
		if err != nil {
			switch {
			case errors.Is(err, checkout.ErrNotSignedIn):
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			case errors.Is(err, checkout.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "No items provided"})
			case errors.Is(err, checkout.ErrCheckoutInFlight):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"sessionId": sessionID, "url": url})
	}
}

// GET /checkout/success?session_id=cs_...
// The client lands here after the hosted payment page; the session id query
// parameter drives reconciliation.
func CheckoutSuccess(orc *checkout.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Query("session_id")
		order, err := orc.Reconcile(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, checkout.ErrMissingSessionID) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID required"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to save order. Please check your account or contact support.",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order saved", "order": order})
	}
}

// GET /checkout/cancel
func CheckoutCancel(orc *checkout.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		orc.Cancel()
		c.JSON(http.StatusOK, gin.H{"message": "Checkout cancelled"})
	}
}
