package models

import (
	"time"

	"cinebook/internal/apperrors"
)

// Request DTOs are validated at the boundary, before any domain logic or
// store access runs. Field-presence and range failures therefore never
// depend on the persistence layer.

// RegisterRequest - POST /api/auth/register
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Validate() *apperrors.Error {
	if r.Name == "" || r.Email == "" || r.Password == "" {
		return apperrors.New(apperrors.Validation, "Please provide name, email, and password")
	}
	return nil
}

// LoginRequest - POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() *apperrors.Error {
	if r.Email == "" || r.Password == "" {
		return apperrors.New(apperrors.Validation, "Please provide email and password")
	}
	return nil
}

// UserInfo is the public view of a user returned by the auth endpoints.
type UserInfo struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse carries the public user fields plus a fresh session token.
type AuthResponse struct {
	User  UserInfo `json:"user"`
	Token string   `json:"token"`
}

// MovieResponse is a movie as rendered to clients: an empty showtimes list
// has already been replaced by the default slots.
type MovieResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Locations []string  `json:"locations"`
	Showtimes []string  `json:"showtimes"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateBookingRequest - POST /api/bookings
type CreateBookingRequest struct {
	MovieID  int64  `json:"movieId"`
	Location string `json:"location"`
	Seats    int    `json:"seats"`
	Showtime string `json:"showtime"`
	ShowDate string `json:"showDate"`
}

// Validate checks field presence first and the seat range second; the
// movie-dependent checks and date parsing happen later, in the booking
// service, so the failure order stays stable.
func (r *CreateBookingRequest) Validate() *apperrors.Error {
	if r.MovieID == 0 || r.Location == "" || r.Seats == 0 || r.Showtime == "" || r.ShowDate == "" {
		return apperrors.New(apperrors.Validation, "Please provide movieId, location, seats, showtime, and showDate")
	}
	if r.Seats < 1 || r.Seats > 50 {
		return apperrors.New(apperrors.Validation, "Seats must be between 1 and 50")
	}
	return nil
}

// BookingConfirmation is the response payload for a created booking and for
// each entry of the per-user listing.
type BookingConfirmation struct {
	BookingID     int64     `json:"bookingId"`
	Movie         string    `json:"movie"`
	Location      string    `json:"location"`
	Seats         int       `json:"seats"`
	Showtime      string    `json:"showtime"`
	ShowDate      time.Time `json:"showDate"`
	TotalAmount   int64     `json:"totalAmount"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}
