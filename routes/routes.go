package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nexxdevv/sunset-traders-api/auth"
	"github.com/nexxdevv/sunset-traders-api/catalog"
	"github.com/nexxdevv/sunset-traders-api/checkout"
	"github.com/nexxdevv/sunset-traders-api/docstore"
	"github.com/nexxdevv/sunset-traders-api/store"
)

// Deps bundles everything the route groups close over.
type Deps struct {
	Catalog      *catalog.Catalog
	Cart         *store.CartStore
	Users        *store.UserStore
	Docs         docstore.Store
	Binder       *auth.Binder
	Orchestrator *checkout.Orchestrator
}

// SetupRoutes is the single entry‐point that wires up all route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// 2️⃣ Shop routes: catalog, cart, favorites
	SetupShopRoutes(r, deps)

	// 3️⃣ Checkout + payment return routes
	SetupCheckoutRoutes(r, deps)

	// 4️⃣ Order routes (JWT‐protected history + websocket)
	SetupOrderRoutes(r, deps)
}
