package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nexxdevv/sunset-traders-api/auth"
)

// SetupAuthRoutes registers the “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.LoginHandler(deps.Binder))               // POST /auth/login
		authGroup.POST("/logout", auth.LogoutHandler(deps.Binder, deps.Users)) // POST /auth/logout
	}
}
