package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Voctor98/TechSolutionsApp/domain"
	"github.com/Voctor98/TechSolutionsApp/internal/http/handlers"
)

// AuthMiddleware resolves the bearer token into a user through the auth
// service. Verification covers signature, expiry and the single-active-
// session check, so any stale or revoked token is rejected here.
func AuthMiddleware(authSvc domain.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		token := tokenParts[1]

		user, err := authSvc.VerifySession(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(handlers.ContextUserKey, user)
		c.Set(handlers.ContextTokenKey, token)

		c.Next()
	}
}
