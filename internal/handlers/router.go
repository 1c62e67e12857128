// Package handlers assembles the HTTP router
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"

	"github.com/KirkDiggler/rpg-dm/internal/errors"
	gamev1 "github.com/KirkDiggler/rpg-dm/internal/handlers/game/v1"
)

// RouterConfig holds the router dependencies
type RouterConfig struct {
	Game        *gamev1.Handler
	CORSOrigins []string
	// Metrics mounts request metrics and /metrics. Collectors register
	// globally, so only one router per process may enable it.
	Metrics bool
}

// Validate ensures all required dependencies are present
func (c *RouterConfig) Validate() error {
	if c.Game == nil {
		return errors.InvalidArgument("game handler is required")
	}
	return nil
}

// NewRouter builds the gin engine with recovery, CORS, health and the
// versioned game API
func NewRouter(cfg *RouterConfig) (*gin.Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Metrics {
		ginprometheus.NewPrometheus("gin").Use(router)
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", health)
	router.HEAD("/health", health)

	cfg.Game.RegisterRoutes(router.Group("/api/v1"))

	return router, nil
}
