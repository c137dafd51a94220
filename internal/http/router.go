package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Voctor98/TechSolutionsApp/internal/http/handlers"
)

// BuildRouter wires the auth endpoints. Register and login stay public;
// everything else requires a verified session.
func BuildRouter(authH *handlers.AuthHandlers, authMW gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", authH.Login)

		protected := auth.Group("")
		protected.Use(authMW)
		{
			protected.GET("/me", authH.Me)
			protected.POST("/logout", authH.Logout)
			protected.DELETE("/account", authH.DeleteAccount)
		}
	}

	return r
}
