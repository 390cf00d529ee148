package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vemmiehq/vemmie-storefront/internal/config"
	"github.com/vemmiehq/vemmie-storefront/internal/handlers"
	"github.com/vemmiehq/vemmie-storefront/internal/middleware"
)

func SetupRouter(h *handlers.Handlers, cfg *config.Config, logger zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(logger))

	// The storefront frontend is the only browser consumer.
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		MaxAge:       12 * time.Hour,
	}))

	v1 := router.Group("/v1")
	v1.Use(middleware.RateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window))
	{
		// --- Ping Route (Public) ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Storefront Routes ---
		v1.GET("/home", h.Home)
		v1.GET("/products", h.ListProducts)
		v1.GET("/products/:handle", h.GetProduct)

		// --- Collection Routes ---
		v1.GET("/collections", h.ListCollections)
		v1.GET("/collections/accessories", h.Accessories)
		v1.GET("/collections/models/:model", h.ModelCollection)
		v1.GET("/collections/:slug", h.LegacyCollection)
	}

	return router
}
