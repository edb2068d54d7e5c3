package main

import (
	"fmt"
	"log"
	"os"

	"github.com/arbitragevault/backend/config"
	httpDelivery "github.com/arbitragevault/backend/internal/delivery/http"
	"github.com/arbitragevault/backend/internal/infrastructure/analysis"
	"github.com/arbitragevault/backend/internal/infrastructure/cache"
	"github.com/arbitragevault/backend/internal/infrastructure/sqlite"
	"github.com/arbitragevault/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting ArbitrageVault Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()
	log.Printf("Database: %s", cfg.Database.Path)

	analysisClient := analysis.NewClient(cfg.Backend.BaseURL, analysis.StaticToken(cfg.Backend.Token))

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		analysisClient.SetDebug(true)
		log.Printf("Analysis client debug mode enabled")
	}

	if cfg.Backend.Token != "" {
		log.Printf("Analysis backend configured: %s (authenticated)", cfg.Backend.BaseURL)
	} else {
		log.Printf("WARNING: Analysis backend configured: %s (no token - requests will be anonymous)", cfg.Backend.BaseURL)
	}

	// Initialize usecase layer
	analysisService := usecase.NewAnalysisService(
		memoryCache,
		analysisClient,
		usecase.AnalysisServiceConfig{
			CacheTTL:        cfg.Cache.TTL,
			AutosourceLimit: cfg.Analysis.AutosourceLimit,
		},
	)
	savedSearchService := usecase.NewSavedSearchService(sqlite.NewStore(db))

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(analysisService, savedSearchService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
