package service

import (
	"context"
	"time"

	"cinebook/internal/apperrors"
	"cinebook/internal/logger"
	"cinebook/internal/metrics"
	"cinebook/internal/models"
)

type BookingService struct {
	bookings  BookingStore
	movies    MovieStore
	health    StoreHealth
	publisher Publisher
}

func NewBookingService(bookings BookingStore, movies MovieStore, health StoreHealth, publisher Publisher) *BookingService {
	return &BookingService{
		bookings:  bookings,
		movies:    movies,
		health:    health,
		publisher: publisher,
	}
}

// Create validates the request against the movie's locations and showtimes,
// computes the fixed-price total and persists the booking. Seats are not
// drawn from any pool: overlapping bookings for the same show are allowed
// without limit.
func (s *BookingService) Create(ctx context.Context, userID int64, req *models.CreateBookingRequest) (*models.BookingConfirmation, error) {
	if !s.health.Available(ctx) {
		return nil, apperrors.StoreDown()
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	movie, err := s.movies.GetByID(ctx, req.MovieID)
	if err != nil {
		return nil, apperrors.FromStore(err, "Error creating booking")
	}
	if movie == nil {
		return nil, apperrors.New(apperrors.NotFound, "Movie not found")
	}

	if !containsString(movie.Locations, req.Location) {
		return nil, apperrors.New(apperrors.Validation, "Selected location is not available for this movie")
	}

	showtimes := movie.Showtimes
	if len(showtimes) == 0 {
		showtimes = models.DefaultShowtimes
	}
	if !containsString(showtimes, req.Showtime) {
		return nil, apperrors.New(apperrors.Validation, "Selected showtime is not available for this movie")
	}

	showDate, perr := parseShowDate(req.ShowDate)
	if perr != nil {
		return nil, apperrors.New(apperrors.Validation, "Invalid show date")
	}

	booking := &models.Booking{
		UserID:        userID,
		MovieID:       movie.ID,
		Location:      req.Location,
		Seats:         req.Seats,
		Showtime:      req.Showtime,
		ShowDate:      showDate,
		TotalAmount:   int64(req.Seats) * models.PricePerSeat,
		PaymentStatus: models.PaymentStatusPaid,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, apperrors.FromStore(err, "Error creating booking")
	}

	metrics.BookingsCreated.Inc()

	event := models.BookingCreatedEvent{
		BookingID:   booking.ID,
		UserID:      booking.UserID,
		MovieID:     booking.MovieID,
		Seats:       booking.Seats,
		TotalAmount: booking.TotalAmount,
		Timestamp:   time.Now(),
	}
	if err := s.publisher.Publish(models.EventBookingCreated, event); err != nil {
		logger.WithContext(ctx).Warn("Failed to publish booking created event",
			"error", err, "booking_id", booking.ID)
	}

	return confirmation(booking, movie.Title), nil
}

// ListMine returns the user's bookings newest first, each with its movie's
// title attached.
func (s *BookingService) ListMine(ctx context.Context, userID int64) ([]models.BookingConfirmation, error) {
	if !s.health.Available(ctx) {
		return nil, apperrors.StoreDown()
	}

	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.FromStore(err, "Error fetching bookings")
	}

	result := make([]models.BookingConfirmation, len(bookings))
	for i, b := range bookings {
		result[i] = *confirmation(&b.Booking, b.MovieTitle)
	}
	return result, nil
}

func confirmation(b *models.Booking, movieTitle string) *models.BookingConfirmation {
	return &models.BookingConfirmation{
		BookingID:     b.ID,
		Movie:         movieTitle,
		Location:      b.Location,
		Seats:         b.Seats,
		Showtime:      b.Showtime,
		ShowDate:      b.ShowDate,
		TotalAmount:   b.TotalAmount,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     b.CreatedAt,
	}
}

// parseShowDate accepts a calendar date or a full RFC 3339 timestamp.
// Date-only values land at midnight UTC.
func parseShowDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
