package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	usecasecontract "github.com/natnaelw/vendora/internal/usecase/contract"
)

// AuthMiddleWare verifies the bearer token and stashes the caller's identity
// on the gin context for downstream handlers.
func AuthMiddleWare(userUC usecasecontract.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header must be in the form 'Bearer <token>'"})
			return
		}

		user, err := userUC.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("userID", user.ID)
		c.Set("userRole", string(user.Role))
		c.Next()
	}
}

// OptionalAuth resolves the caller's identity when a valid bearer token is
// present but never rejects the request. Public thread reads use it so
// user_reacted reflects the signed-in viewer.
func OptionalAuth(userUC usecasecontract.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.Next()
			return
		}

		if user, err := userUC.Authenticate(c.Request.Context(), parts[1]); err == nil {
			c.Set("userID", user.ID)
			c.Set("userRole", string(user.Role))
		}
		c.Next()
	}
}
