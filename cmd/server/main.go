package main

import (
	"net/http"

	"github.com/IKEMENLTD/taskmanagement-sub001/internal/config"
	"github.com/IKEMENLTD/taskmanagement-sub001/internal/database"
	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/service"
	"github.com/IKEMENLTD/taskmanagement-sub001/internal/handlers"
	"github.com/IKEMENLTD/taskmanagement-sub001/internal/line"
	"github.com/IKEMENLTD/taskmanagement-sub001/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := godotenv.Load(); err != nil {
		logger.Warn(".env file not found")
	}

	cfg := config.Load()

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	logger.Info("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed successfully")

	dm := database.NewInstance(db)
	lineClient := line.New(cfg.RelayURL)

	services := service.New(dm, lineClient, logger, cfg.OrgID, cfg.LegacySettingsPath)

	if cfg.OrgID == "" {
		logger.Warn("ORG_ID not set, daily report scheduler will be idle")
	}
	services.Scheduler.Start()
	defer services.Scheduler.Stop()

	relay := handlers.NewRelay(logger)
	api := handlers.NewAPI(services.Notification, logger)
	router := handlers.Routes(relay, api)

	logger.Infof("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
