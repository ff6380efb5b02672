package models

import "time"

// NATS subjects for domain events. Publishing is fire-and-forget: a failed
// publish is logged and never fails the originating request.
const (
	EventUserRegistered = "user.registered"
	EventBookingCreated = "booking.created"
)

type UserRegisteredEvent struct {
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

type BookingCreatedEvent struct {
	BookingID   int64     `json:"booking_id"`
	UserID      int64     `json:"user_id"`
	MovieID     int64     `json:"movie_id"`
	Seats       int       `json:"seats"`
	TotalAmount int64     `json:"total_amount"`
	Timestamp   time.Time `json:"timestamp"`
}
