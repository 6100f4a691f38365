package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/nexxdevv/sunset-traders-api/models"
	"github.com/nexxdevv/sunset-traders-api/store"
)

// LoginHandler verifies a Firebase ID token, feeds the resulting identity
// through the binder, and issues a JWT for subsequent requests.
func LoginHandler(binder *Binder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			IDToken string `json:"idToken"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.IDToken == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		ctx := c.Request.Context()

		token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(ctx, req.IDToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Firebase ID token"})
			return
		}
		if token.Audience != projectID {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token audience"})
			return
		}

		email, _ := token.Claims["email"].(string)
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)

		ident := &models.Identity{
			UID:      token.UID,
			Name:     name,
			Email:    email,
			PhotoURL: picture,
		}
		binder.OnSessionChange(ctx, ident)

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"user":    ident,
			"token":   issueJWT(email, "user", token.UID, name, picture),
		})
	}
}

// LogoutHandler clears the identity and the saved products, then reports the
// sign-out to the binder.
func LogoutHandler(binder *Binder, users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		users.Logout()
		binder.OnSessionChange(c.Request.Context(), nil)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

func issueJWT(email, role, userID, name, picture string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"name":    name,
		"picture": picture,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return ""
	}

	return signedToken
}
