package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Voctor98/TechSolutionsApp/domain"
)

// Context keys set by the auth middleware
const (
	ContextUserKey  = "auth_user"
	ContextTokenKey = "auth_token"
)

// currentUser returns the user the auth middleware resolved, or nil
func currentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*domain.User)
	if !ok {
		return nil
	}
	return user
}

// bearerToken returns the bearer credential from the request, preferring the
// value the middleware already extracted
func bearerToken(c *gin.Context) string {
	if v, ok := c.Get(ContextTokenKey); ok {
		if token, ok := v.(string); ok {
			return token
		}
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
