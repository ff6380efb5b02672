package consumers

import (
	"encoding/json"
	"log/slog"

	"cinebook/internal/models"

	"github.com/nats-io/stan.go"
)

// Handlers processes domain events off the stream. Today both handlers only
// record the event; they are the hook point for confirmation mails or
// analytics without touching the request path.
type Handlers struct{}

func NewHandlers() *Handlers {
	return &Handlers{}
}

func (h *Handlers) HandleUserRegistered(m *stan.Msg) {
	var event models.UserRegisteredEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal user registered event", "error", err)
		m.Ack()
		return
	}

	slog.Info("User registered",
		"user_id", event.UserID, "email", event.Email, "at", event.Timestamp)

	m.Ack()
}

func (h *Handlers) HandleBookingCreated(m *stan.Msg) {
	var event models.BookingCreatedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal booking created event", "error", err)
		m.Ack()
		return
	}

	slog.Info("Booking created",
		"booking_id", event.BookingID,
		"user_id", event.UserID,
		"movie_id", event.MovieID,
		"seats", event.Seats,
		"total_amount", event.TotalAmount)

	m.Ack()
}
