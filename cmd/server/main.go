package main

import (
	"context"
	"log"
	"os"

	"salesflow-backend/internal/api/routes"
	"salesflow-backend/internal/config"
	"salesflow-backend/internal/database"
	"salesflow-backend/internal/insight"
	"salesflow-backend/internal/logger"
	"salesflow-backend/internal/persistence"
	"salesflow-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	_ "salesflow-backend/docs" // This is needed for swag
)

//	@title			SalesFlow Backend API
//	@version		1.0
//	@description	Backend API for the SalesFlow pipeline dashboard: deals, reps, metrics, incentives and live pipeline updates.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)
	appLog := logger.New()

	ctx := context.Background()

	// Select the persistence collaborator. Without a configured database
	// the service runs fully in memory on the seed dataset.
	var (
		db       *gorm.DB
		collab   persistence.Collaborator
		notifier persistence.Notifier
	)
	if cfg.DatabaseConfigured() {
		db, err = database.Initialize(cfg.DatabaseURL, nil)
		if err != nil {
			logrus.Fatal("Failed to initialize database:", err)
		}
		pg := persistence.NewPostgres(db, appLog)
		if err := pg.SeedIfEmpty(ctx); err != nil {
			logrus.Fatal("Failed to seed database:", err)
		}
		collab = pg
		notifier = persistence.NewListener(cfg.DatabaseURL, appLog)
	} else {
		logrus.Info("No database configured, serving the seed dataset")
		collab = persistence.NewMemory()
	}

	// Load the store
	s := store.New(collab, appLog)
	defer s.Close()
	if err := s.Load(ctx); err != nil {
		logrus.Fatal("Failed to load pipeline state:", err)
	}

	// Live feed
	feed := store.NewFeed(s, notifier, store.FeedConfig{
		Interval:     cfg.LiveFeedInterval(),
		TickChance:   cfg.LiveFeedTickChance,
		JitterPoints: cfg.LiveFeedJitterPoints,
	})

	// Select the insight generator
	var insights insight.Generator
	if cfg.InsightConfigured() {
		insights, err = insight.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logrus.Warn("Gemini unavailable, using static insights: ", err)
			insights = insight.NewStatic()
		}
	} else {
		insights = insight.NewStatic()
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, s, feed, insights)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
