package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cafe-employee-backend/config"
	"cafe-employee-backend/internal/db"
	"cafe-employee-backend/internal/seed"
)

const (
	connectAttempts = 10
	connectDelay    = 5 * time.Second
)

func main() {
	logger := log.New(os.Stdout, "seed ", log.LstdFlags)

	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %q: %v", configPath, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := db.OpenWithRetry(ctx, &cfg.Database, connectAttempts, connectDelay)
	if err != nil {
		logger.Fatalf("failed to connect to the database: %v", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		defer sqlDB.Close()
	}

	result, err := seed.Run(ctx, gormDB)
	if err != nil {
		logger.Fatalf("seeding failed: %v", err)
	}
	logger.Printf("database seeded with %d cafes and %d employees", result.Cafes, result.Employees)
}
