package http

import (
	"github.com/arbitragevault/backend/config"
	"github.com/gin-gonic/gin"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes - everything here requires a bearer token
	v1 := router.Group("/api/v1")
	v1.Use(AuthMiddleware())
	{
		v1.POST("/analyses", handler.AnalyzeBatch)

		products := v1.Group("/products")
		{
			products.GET("/:asin/score", handler.GetProductScore)
			products.GET("/:asin/pricing", handler.GetProductPricing)
		}

		v1.GET("/niches/discover", handler.DiscoverNiches)
		v1.GET("/autosourcing/picks", handler.AutosourcingPicks)

		searches := v1.Group("/searches")
		{
			searches.POST("", handler.CreateSavedSearch)
			searches.GET("", handler.ListSavedSearches)
			searches.GET("/:id", handler.GetSavedSearch)
			searches.DELETE("/:id", handler.DeleteSavedSearch)
		}
	}

	return router
}
