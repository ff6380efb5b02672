package messaging

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/stan.go"
)

// ErrNotConnected is returned by Publish when the client was created in
// disconnected mode. Callers treat publish failures as log-only.
var ErrNotConnected = errors.New("nats: not connected")

type NATSClient struct {
	conn stan.Conn
}

type Config struct {
	URL       string
	ClusterID string
	ClientID  string
}

func NewNATSClient(cfg Config) (*NATSClient, error) {
	// Suffix the client ID so multiple instances don't evict each other.
	uniqueClientID := fmt.Sprintf("%s-%s", cfg.ClientID, uuid.New().String()[:8])

	conn, err := stan.Connect(cfg.ClusterID, uniqueClientID, stan.NatsURL(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS Streaming: %w", err)
	}

	slog.Info("Connected to NATS Streaming",
		"url", cfg.URL, "cluster", cfg.ClusterID, "client", uniqueClientID)

	return &NATSClient{conn: conn}, nil
}

// Disconnected returns a client whose publishes fail with ErrNotConnected.
// The API uses it when the broker is unreachable at startup: domain events
// are fire-and-forget, so a missing broker must not take the service down.
func Disconnected() *NATSClient {
	return &NATSClient{}
}

func (nc *NATSClient) Publish(subject string, data any) error {
	if nc.conn == nil {
		return ErrNotConnected
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	if err := nc.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("failed to publish to subject %s: %w", subject, err)
	}

	return nil
}

func (nc *NATSClient) Subscribe(subject string, handler stan.MsgHandler) (stan.Subscription, error) {
	if nc.conn == nil {
		return nil, ErrNotConnected
	}

	sub, err := nc.conn.Subscribe(subject, handler,
		stan.DurableName(subject+"-durable"),
		stan.SetManualAckMode(),
		stan.AckWait(30*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject %s: %w", subject, err)
	}

	return sub, nil
}

func (nc *NATSClient) Close() error {
	if nc.conn == nil {
		return nil
	}
	return nc.conn.Close()
}
