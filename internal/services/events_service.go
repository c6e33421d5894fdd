package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/outflo/outflo-backend/internal/config"
	"github.com/outflo/outflo-backend/internal/models"
)

const (
	CampaignEventsQueue = "campaign_events"
	LeadEventsQueue     = "lead_events"
)

// EventService publishes domain events to RabbitMQ. The broker is optional
// infrastructure: a nil *EventService is safe to publish on, and every
// publish failure is logged rather than surfaced to the request path.
type EventService struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewEventService(cfg *config.Config) (*EventService, error) {
	conn, err := amqp.Dial(cfg.AMQPURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	for _, queue := range []string{CampaignEventsQueue, LeadEventsQueue} {
		_, err = channel.QueueDeclare(
			queue, // name
			true,  // durable
			false, // delete when unused
			false, // exclusive
			false, // no-wait
			nil,   // arguments
		)
		if err != nil {
			channel.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
		}
	}

	return &EventService{conn: conn, channel: channel}, nil
}

// Publish sends one JSON event to the given queue.
func (s *EventService) Publish(queue string, event map[string]interface{}) error {
	if s == nil {
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = s.channel.PublishWithContext(ctx,
		"",    // exchange
		queue, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", queue, err)
	}
	return nil
}

// PublishCampaignEvent emits a campaign lifecycle event.
func (s *EventService) PublishCampaignEvent(eventType string, campaign *models.Campaign) {
	if s == nil {
		return
	}
	err := s.Publish(CampaignEventsQueue, map[string]interface{}{
		"type":        eventType,
		"campaign_id": campaign.ID,
		"name":        campaign.Name,
		"status":      campaign.Status,
		"timestamp":   time.Now().Format(time.RFC3339),
	})
	if err != nil {
		logrus.Warnf("Failed to publish %s event: %v", eventType, err)
	}
}

// PublishIngestionSummary emits the result of one scraper run.
func (s *EventService) PublishIngestionSummary(searchTerm string, page, parsed, inserted, skipped int) {
	if s == nil {
		return
	}
	err := s.Publish(LeadEventsQueue, map[string]interface{}{
		"type":        "leads.ingested",
		"search_term": searchTerm,
		"page":        page,
		"parsed":      parsed,
		"inserted":    inserted,
		"skipped":     skipped,
		"timestamp":   time.Now().Format(time.RFC3339),
	})
	if err != nil {
		logrus.Warnf("Failed to publish ingestion summary: %v", err)
	}
}

// Close shuts down the channel and connection.
func (s *EventService) Close() {
	if s == nil {
		return
	}
	if s.channel != nil {
		s.channel.Close()
	}
	if s.conn != nil {
		s.conn.Close()
	}
}
