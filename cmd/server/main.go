package main

import (
	"fmt"
	"log"
	"os"

	"github.com/TimSpecFlow/door-builder-app/config"
	httpDelivery "github.com/TimSpecFlow/door-builder-app/internal/delivery/http"
	"github.com/TimSpecFlow/door-builder-app/internal/distributor"
	"github.com/TimSpecFlow/door-builder-app/internal/domain"
	"github.com/TimSpecFlow/door-builder-app/internal/infrastructure/vision"
	"github.com/TimSpecFlow/door-builder-app/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting SpecFlow Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Build the distributor registry once; catalogs are immutable and
	// shared across all requests.
	registry := distributor.DefaultRegistry()
	log.Printf("Distributors registered: %d (%v)", registry.Len(), registry.IDs())

	// Initialize usecase layer
	recommendationService := usecase.NewRecommendationService(registry)
	estimateService := usecase.NewEstimateService(usecase.EstimateServiceConfig{
		BasePricePerSqFt: cfg.Pricing.BasePricePerSqFt,
	})

	// Vision measurement parsing is optional; without an API key the
	// endpoint reports itself unavailable.
	var extractor domain.MeasurementExtractor
	if cfg.Vision.APIKey != "" {
		visionClient := vision.NewClient(cfg.Vision.APIKey, cfg.Vision.BaseURL, cfg.Vision.Model)
		if cfg.Server.Environment == "development" {
			visionClient.SetDebug(true)
			log.Printf("Vision client debug mode enabled")
		}
		extractor = visionClient
		log.Printf("Vision API configured (key: %s...)", cfg.Vision.APIKey[:min(8, len(cfg.Vision.APIKey))])
	} else {
		log.Printf("WARNING: Vision API key not configured - measurement parsing disabled")
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(recommendationService, estimateService, extractor)

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
