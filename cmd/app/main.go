package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tgzgondoz/family-fitness-gym/internal/config"
	"github.com/tgzgondoz/family-fitness-gym/internal/db"
	"github.com/tgzgondoz/family-fitness-gym/internal/logger"
	"github.com/tgzgondoz/family-fitness-gym/internal/member"
	"github.com/tgzgondoz/family-fitness-gym/internal/notification"
	"github.com/tgzgondoz/family-fitness-gym/internal/server"
)

// @title Family Fitness Gym API
// @version 1.0
// @description API for gym membership management: check-ins, subscriptions, sales and notifications.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	logger.Init()
	logger.Info("Starting Family Fitness application")
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	memberRepo := member.NewRepository(database)
	dispatcher := notification.NewDispatcher(cfg.RedisAddr, cfg.PushGatewayURL,
		func(ctx context.Context, userID int) (string, error) {
			u, err := memberRepo.FindByID(ctx, userID)
			if err != nil {
				return "", err
			}
			if u.PushToken == nil {
				return "", nil
			}
			return *u.PushToken, nil
		})
	defer dispatcher.Close()
	logger.Info("Push dispatcher initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go dispatcher.Start(ctx)

	srv := server.New(database, cfg, dispatcher)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
