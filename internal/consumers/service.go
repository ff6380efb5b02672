package consumers

import (
	"context"
	"fmt"
	"log/slog"

	"cinebook/internal/config"
	"cinebook/internal/messaging"
	"cinebook/internal/models"

	"github.com/nats-io/stan.go"
)

type ConsumerService struct {
	nats     *messaging.NATSClient
	handlers *Handlers
	subs     []stan.Subscription
}

// NewConsumerService connects to the stream. Unlike the API, the consumer
// binary is useless without a broker, so a failed connect is fatal here.
func NewConsumerService(cfg *config.Config) (*ConsumerService, error) {
	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &ConsumerService{
		nats:     natsClient,
		handlers: NewHandlers(),
	}, nil
}

func (s *ConsumerService) Start() error {
	subjects := map[string]stan.MsgHandler{
		models.EventUserRegistered: s.handlers.HandleUserRegistered,
		models.EventBookingCreated: s.handlers.HandleBookingCreated,
	}

	for subject, handler := range subjects {
		sub, err := s.nats.Subscribe(subject, handler)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
		s.subs = append(s.subs, sub)
		slog.Info("Subscribed", "subject", subject)
	}

	return nil
}

func (s *ConsumerService) Shutdown(ctx context.Context) error {
	for _, sub := range s.subs {
		if err := sub.Close(); err != nil {
			slog.Error("Error closing subscription", "error", err)
		}
	}
	return s.nats.Close()
}
