package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/nexxdevv/sunset-traders-api/controllers/cart"
	favoritesControllers "github.com/nexxdevv/sunset-traders-api/controllers/favorites"
	productControllers "github.com/nexxdevv/sunset-traders-api/controllers/product"
)

// SetupShopRoutes registers catalog browsing plus the device-local cart and
// favorites stores. These are not JWT-protected: the cart and saved products
// exist before sign-in.
func SetupShopRoutes(r *gin.Engine, deps Deps) {
	// ──────────────── Browse Products ────────────────
	productGroup := r.Group("/products")
	{
		productGroup.GET("/", productControllers.GetProducts(deps.Catalog))                 // GET /products?category=
		productGroup.GET("/search", productControllers.SearchProducts(deps.Catalog))        // GET /products/search?q=
		productGroup.GET("/categories", productControllers.GetCategories(deps.Catalog))     // GET /products/categories
		productGroup.GET("/export", productControllers.ExportProductsToExcel(deps.Catalog)) // GET /products/export
		productGroup.GET("/:id", productControllers.GetProductByID(deps.Catalog))           // GET /products/:id
	}

	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("/", cartControllers.GetCart(deps.Cart))                             // GET /cart
		cartGroup.POST("/", cartControllers.AddToCart(deps.Cart, deps.Catalog))            // POST /cart
		cartGroup.POST("/:product_id/increment", cartControllers.IncrementItem(deps.Cart)) // POST /cart/:product_id/increment
		cartGroup.POST("/:product_id/decrement", cartControllers.DecrementItem(deps.Cart)) // POST /cart/:product_id/decrement
		cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(deps.Cart))        // DELETE /cart/:product_id
		cartGroup.DELETE("/", cartControllers.ClearCart(deps.Cart))                        // DELETE /cart
	}

	// ──────────────── Saved Products ────────────────
	favoritesGroup := r.Group("/favorites")
	{
		favoritesGroup.GET("/", favoritesControllers.GetSavedProducts(deps.Users))                          // GET /favorites
		favoritesGroup.POST("/:product_id", favoritesControllers.AddSavedProduct(deps.Users, deps.Catalog)) // POST /favorites/:product_id
		favoritesGroup.DELETE("/:product_id", favoritesControllers.RemoveSavedProduct(deps.Users))          // DELETE /favorites/:product_id
		favoritesGroup.DELETE("/", favoritesControllers.ClearSavedProducts(deps.Users))                     // DELETE /favorites
	}
}
