package main

import (
	"carelog-go/internal/config"
	"carelog-go/internal/database"
	logger "carelog-go/internal/logging"
	"carelog-go/internal/models"
	"carelog-go/internal/repository"
	"carelog-go/internal/router"
	"carelog-go/internal/scoring"
	"carelog-go/internal/services"

	"go.uber.org/zap"
)

func main() {
	// Initialize Logger
	log, err := logger.Init(".")
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// Initialize Configuration
	if err := config.Init(".", log); err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize Database
	database.Init(log)

	// Load the domain registry at startup. A misconfigured domain is fatal:
	// scoring must never run against a silently-defaulted policy.
	registry, err := models.LoadDomainRegistry(config.Conf.Scoring.DomainsFile)
	if err != nil {
		log.Fatal("Failed to load domain registry", zap.Error(err))
	}
	if err := repository.SyncDomains(registry); err != nil {
		log.Fatal("Failed to sync domains to database", zap.Error(err))
	}

	engine := scoring.NewEngine(registry)
	batch := services.NewBatchService(log, engine, config.Conf.Scoring.WindowDays, config.Conf.Scoring.Workers)

	scheduler := services.NewScheduler(log, batch, config.Conf.Scoring.RecalcTime)
	scheduler.Start()

	// Setup router, passing the logger to it
	r := router.Setup(log, engine, batch)

	// Start the Gin server
	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
