package main

import (
	"fmt"
	"log"
	"os"

	"github.com/blackscan/backend/config"
	httpDelivery "github.com/blackscan/backend/internal/delivery/http"
	"github.com/blackscan/backend/internal/infrastructure/cache"
	"github.com/blackscan/backend/internal/infrastructure/recognition"
	"github.com/blackscan/backend/internal/infrastructure/typesense"
	"github.com/blackscan/backend/internal/taxonomy"
	"github.com/blackscan/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting BlackScan Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	registry := taxonomy.NewRegistry()

	memoryCache := cache.NewMemoryCache()
	defer memoryCache.Close()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	recognitionClient := recognition.NewClient(recognition.Config{
		BaseURL:           cfg.Recognition.BaseURL,
		APIKey:            cfg.Recognition.APIKey,
		MaxAttempts:       cfg.Recognition.MaxAttempts,
		RequestsPerMinute: cfg.Recognition.RequestsPerMinute,
	})
	searchClient := typesense.NewClient(cfg.Typesense.Host, cfg.Typesense.APIKey, cfg.Typesense.Collection)

	if cfg.Server.Environment == "development" {
		recognitionClient.SetDebug(true)
		searchClient.SetDebug(true)
		log.Printf("Infrastructure client debug mode enabled")
	}

	log.Printf("Recognition oracle: %s", cfg.Recognition.BaseURL)
	log.Printf("Search index: %s (collection: %s)", cfg.Typesense.Host, cfg.Typesense.Collection)

	scanService := usecase.NewScanService(
		registry,
		memoryCache,
		searchClient,
		recognitionClient,
		usecase.ScanServiceConfig{
			CacheTTL:               cfg.Cache.TTL,
			MinConfidenceThreshold: cfg.Matching.MinConfidenceThreshold,
			SearchLimit:            cfg.Matching.SearchLimit,
			Orchestrator: usecase.OrchestratorConfig{
				MinOCRQuality:     cfg.Recognition.MinOCRQuality,
				MinOCRWords:       cfg.Recognition.MinOCRWords,
				MinTextConfidence: cfg.Recognition.MinTextConfidence,
				TextModelCost:     cfg.Recognition.TextModelCost,
				VisionModelCost:   cfg.Recognition.VisionModelCost,
			},
			EnableDebugLogging: cfg.Matching.EnableDebugLogging,
		},
	)

	log.Printf("Matching: confidence=%.2f, limit=%d, debug=%v",
		cfg.Matching.MinConfidenceThreshold,
		cfg.Matching.SearchLimit,
		cfg.Matching.EnableDebugLogging)

	handler := httpDelivery.NewHandler(scanService)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
