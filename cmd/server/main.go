package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/outflo/outflo-backend/internal/config"
	"github.com/outflo/outflo-backend/internal/database"
	"github.com/outflo/outflo-backend/internal/router"
	"github.com/outflo/outflo-backend/internal/services"
	"github.com/outflo/outflo-backend/internal/utils"

	_ "github.com/outflo/outflo-backend/docs"
)

// @title OutFlo Backend API
// @version 1.0
// @description Campaign and lead management API with AI-assisted outreach message generation

// @BasePath /api/v1

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	// Configure logging
	configureLogging(cfg.LogLevel)

	// Initialize Sentry
	utils.InitSentry(cfg.SentryDSN)

	// Initialize database connection
	db, err := database.InitDB(cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	// The generation credential is required at startup
	generator, err := services.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey)
	if err != nil {
		logrus.Fatalf("Failed to initialize generation client: %v", err)
	}

	// Initialize event publishing; the broker is optional
	events, err := services.NewEventService(cfg)
	if err != nil {
		logrus.Warnf("Failed to initialize RabbitMQ, events disabled: %v", err)
		events = nil
	} else {
		logrus.Info("RabbitMQ event service initialized")
		defer events.Close()
	}

	// Initialize router
	r := router.SetupRouter(db, cfg, events, generator)

	// Configure HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		logrus.Infof("Server starting on port %s", cfg.Port)
		logrus.Infof("API Health Check: http://localhost:%s/health", cfg.Port)
		logrus.Infof("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Create a deadline for server shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown the server
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited properly")
}

func configureLogging(logLevel string) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}
