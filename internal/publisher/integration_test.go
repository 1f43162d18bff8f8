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

	"newsintel/internal/config"
	"newsintel/internal/domain"
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
	cfg := config.RabbitMQConfig{
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

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishArticle() {
	cfg := config.RabbitMQConfig{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-article",
		RoutingKey: "test-routing-key-article",
		QueueName:  "test-queue-article",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	now := time.Now().Truncate(time.Millisecond)
	article := &domain.Article{
		ID: 1,
		ContentItem: domain.ContentItem{
			URL:           "https://example.com/article",
			Title:         "Test Article",
			Source:        "example.com",
			PublishedDate: now,
			Summary:       "Test Summary",
		},
		ScrapedAt: now,
	}

	err = pub.PublishArticle(s.ctx, article)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)
	s.Equal("application/json", msg.ContentType)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)

	var received struct {
		Event     string         `json:"event"`
		Payload   domain.Article `json:"payload"`
		Timestamp time.Time      `json:"timestamp"`
	}
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal(EventArticleCreated, received.Event)
	s.Equal("https://example.com/article", received.Payload.URL)
	s.Equal("Test Article", received.Payload.Title)
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishDigest() {
	cfg := config.RabbitMQConfig{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-digest",
		RoutingKey: "test-routing-key-digest",
		QueueName:  "test-queue-digest",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	now := time.Now().Truncate(time.Millisecond)
	digest := &domain.Digest{
		ID:            5,
		DigestType:    domain.DigestDaily,
		PeriodStart:   now.AddDate(0, 0, -1),
		PeriodEnd:     now,
		CreatedAt:     now,
		Title:         "Daily Digest",
		TotalArticles: 3,
	}

	err = pub.PublishDigest(s.ctx, digest)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	var received struct {
		Event   string        `json:"event"`
		Payload domain.Digest `json:"payload"`
	}
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal(EventDigestCreated, received.Event)
	s.Equal(domain.DigestDaily, received.Payload.DigestType)
	s.Equal("Daily Digest", received.Payload.Title)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg config.RabbitMQConfig) *amqp.Delivery {
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
		s.Fail("Timeout waiting for message")
		return nil
	}
}
