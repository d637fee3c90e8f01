//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"reachsync/internal/domain"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishProgress() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-progress",
		RoutingKey: "test-routing-key-progress",
		QueueName:  "test-queue-progress",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	stats := &domain.SyncStats{
		RunID:     "run-123",
		OwnerID:   "owner-1",
		Platform:  domain.PlatformYouTube,
		Total:     4,
		Processed: 1,
		Succeeded: 1,
	}

	err = pub.PublishProgress(s.ctx, stats)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	var received SyncEventMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal("progress", received.Event)
	s.Equal("run-123", received.RunID)
	s.Equal(25, received.Progress)
	s.Equal(1, received.Succeeded)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishSummary() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-summary",
		RoutingKey: "test-routing-key-summary",
		QueueName:  "test-queue-summary",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	stats := &domain.SyncStats{
		RunID:      "run-456",
		OwnerID:    "owner-1",
		Platform:   domain.PlatformInstagram,
		Total:      3,
		Processed:  3,
		Succeeded:  2,
		Failed:     1,
		Unresolved: 1,
	}

	err = pub.PublishSummary(s.ctx, stats)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	var received SyncEventMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal("summary", received.Event)
	s.Equal(100, received.Progress)
	s.Equal(2, received.Succeeded)
	s.Equal(1, received.Failed)
	s.Equal(1, received.Unresolved)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		return nil
	}
}
