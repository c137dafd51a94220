package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Voctor98/TechSolutionsApp/internal/config"
	httpx "github.com/Voctor98/TechSolutionsApp/internal/http"
	"github.com/Voctor98/TechSolutionsApp/internal/http/handlers"
	"github.com/Voctor98/TechSolutionsApp/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	if err := container.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	authH := handlers.NewAuthHandlers(container.AuthSvc)
	authMW := middleware.AuthMiddleware(container.AuthSvc)
	r := httpx.BuildRouter(authH, authMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
