package models

import (
	"time"
)

// PaymentStatus values a booking can carry. There is no payment gateway:
// bookings are created as PAID unconditionally.
const (
	PaymentStatusPending = "PENDING"
	PaymentStatusPaid    = "PAID"
)

// PricePerSeat is the fixed ticket price; a booking's total is always
// seats * PricePerSeat.
const PricePerSeat int64 = 250

// DefaultShowtimes is substituted whenever a movie has no showtimes of its
// own, both in responses and when validating a booking.
var DefaultShowtimes = []string{"10:00 AM", "1:30 PM", "4:30 PM", "7:30 PM"}

// DefaultLocations is assigned to movies auto-created by a search miss.
var DefaultLocations = []string{"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata"}

// User represents a registered account. The password is stored only as a
// bcrypt hash.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Movie represents a listed movie with the locations and showtimes it can be
// booked for.
type Movie struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Locations []string  `json:"locations" db:"locations"`
	Showtimes []string  `json:"showtimes" db:"showtimes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Booking is immutable once created; there is no cancellation or refund
// path and no seat inventory is decremented anywhere.
type Booking struct {
	ID            int64     `json:"id" db:"id"`
	UserID        int64     `json:"user_id" db:"user_id"`
	MovieID       int64     `json:"movie_id" db:"movie_id"`
	Location      string    `json:"location" db:"location"`
	Seats         int       `json:"seats" db:"seats"`
	Showtime      string    `json:"showtime" db:"showtime"`
	ShowDate      time.Time `json:"show_date" db:"show_date"`
	TotalAmount   int64     `json:"total_amount" db:"total_amount"`
	PaymentStatus string    `json:"payment_status" db:"payment_status"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// BookingWithMovie is a booking row joined with its movie's title, as
// returned by the per-user listing query.
type BookingWithMovie struct {
	Booking
	MovieTitle string `db:"movie_title"`
}
