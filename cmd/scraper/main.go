// The scraper binary runs one lead-ingestion batch: it fetches a single page
// of people-search results for a term and upserts the parsed profiles into
// the lead store. It is triggered externally (cron, operator shell); the API
// server never calls it.
package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/outflo/outflo-backend/internal/config"
	"github.com/outflo/outflo-backend/internal/database"
	"github.com/outflo/outflo-backend/internal/database/repository"
	"github.com/outflo/outflo-backend/internal/scraper"
	"github.com/outflo/outflo-backend/internal/services"
)

func main() {
	searchTerm := flag.String("term", "lead generation agency", "people-search term")
	page := flag.Int("page", 1, "1-based results page to fetch")
	flag.Parse()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if cfg.LinkedInCookies == "" {
		logrus.Fatal("LINKEDIN_COOKIES is not set")
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	events, err := services.NewEventService(cfg)
	if err != nil {
		logrus.Warnf("Failed to initialize RabbitMQ, events disabled: %v", err)
		events = nil
	} else {
		defer events.Close()
	}

	client := scraper.NewClient(cfg.LinkedInCookies)
	leadRepo := repository.NewLeadRepository(db)
	ingestor := scraper.NewIngestor(client, leadRepo, events)

	result := ingestor.Run(*searchTerm, *page)
	if result.RateLimited {
		logrus.Warn("Run aborted by rate limit, re-run later")
	}
}
