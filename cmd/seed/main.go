package main

import (
	"context"
	"log"
	"time"

	"portfolio-api/internal/config"
	"portfolio-api/internal/db"
	"portfolio-api/internal/logger"
	"portfolio-api/internal/seed"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}
	if _, err := logger.Setup(cfg.LogLevel, cfg.LogFile); err != nil {
		log.Fatal("Failed to set up logging: ", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Logger.WithError(err).Fatal("Failed to connect to database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := seed.Run(ctx, database, seed.Options{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
	})
	if err != nil {
		logger.Logger.WithError(err).Fatal("Seed failed")
	}

	logger.LogEvent(logrus.InfoLevel, "Seed completed", logrus.Fields{
		"admin_created":    result.AdminCreated,
		"skill_categories": result.SkillCategories,
		"projects":         result.Projects,
		"experiences":      result.Experiences,
	})
}
