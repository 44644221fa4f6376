package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sugarcheck/backend/config"
	httpDelivery "github.com/sugarcheck/backend/internal/delivery/http"
	"github.com/sugarcheck/backend/internal/infrastructure/cache"
	"github.com/sugarcheck/backend/internal/infrastructure/openfoodfacts"
	"github.com/sugarcheck/backend/internal/infrastructure/postgres"
	"github.com/sugarcheck/backend/internal/infrastructure/usda"
	"github.com/sugarcheck/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Server.Environment == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	log.WithFields(logrus.Fields{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
	}).Info("Starting SugarCheck Backend v1.0.0")

	// Database and repositories
	db, err := postgres.Open(cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	foods := postgres.NewFoodRepository(db)
	entries := postgres.NewTrackingRepository(db)
	favorites := postgres.NewFavoriteRepository(db)
	insights := postgres.NewInsightRepository(db)
	users := postgres.NewUserRepository(db)

	if _, err := users.EnsureDefault(context.Background()); err != nil {
		log.Fatalf("Failed to seed default user: %v", err)
	}

	// Nutrition sources and lookup cache
	memoryCache := cache.NewMemoryCache()
	usdaClient := usda.NewClient(cfg.USDA.APIKey, cfg.USDA.BaseURL, log)
	offClient := openfoodfacts.NewClient(cfg.OpenFoodFacts.BaseURL, log)

	log.WithFields(logrus.Fields{
		"usda_base_url": cfg.USDA.BaseURL,
		"off_base_url":  cfg.OpenFoodFacts.BaseURL,
		"cache_ttl":     cfg.Cache.TTL.String(),
	}).Info("Nutrition sources configured")

	// Usecase layer
	bands := usecase.HealthBands{
		LowMax:      cfg.Analysis.LowMaxG,
		ModerateMax: cfg.Analysis.ModerateMaxG,
		HighMax:     cfg.Analysis.HighMaxG,
	}

	lookupService := usecase.NewLookupService(
		memoryCache,
		usdaClient,
		offClient,
		bands,
		usecase.LookupServiceConfig{CacheTTL: cfg.Cache.TTL},
		log,
	)

	trackerService := usecase.NewTrackerService(
		foods,
		entries,
		favorites,
		insights,
		users,
		cfg.Tracking.DailyLimitG,
		log,
	)

	// HTTP delivery
	handler := httpDelivery.NewHandler(lookupService, trackerService)
	router := httpDelivery.SetupRouter(cfg, handler, log)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Infof("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
