// Command load_initial_data seeds a Postgres database with the built-in
// demo pipeline. Run it once against a fresh database:
//
//	DATABASE_URL=postgres://... go run ./scripts
//
// Existing rows are left alone; rerunning is a no-op unless -force is set,
// which truncates both tables first.
package main

import (
	"context"
	"flag"
	"log"

	"salesflow-backend/internal/config"
	"salesflow-backend/internal/database"
	"salesflow-backend/internal/logger"
	"salesflow-backend/internal/persistence"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	force := flag.Bool("force", false, "truncate existing data before seeding")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if !cfg.DatabaseConfigured() {
		log.Fatal("DATABASE_URL (or DB_* variables) must be set")
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	ctx := context.Background()
	if *force {
		if err := db.WithContext(ctx).Exec("TRUNCATE deals, sales_reps").Error; err != nil {
			log.Fatal("Failed to truncate tables:", err)
		}
		logrus.Info("Truncated deals and sales_reps")
	}

	pg := persistence.NewPostgres(db, logger.New())
	if err := pg.SeedIfEmpty(ctx); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	logrus.Info("Seed data loaded")
}
