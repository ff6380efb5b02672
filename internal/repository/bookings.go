package repository

import (
	"context"

	"cinebook/internal/database"
	"cinebook/internal/models"
)

type BookingRepository struct {
	db *database.DB
}

func NewBookingRepository(db *database.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (user_id, movie_id, location, seats, showtime, show_date, total_amount, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		booking.UserID,
		booking.MovieID,
		booking.Location,
		booking.Seats,
		booking.Showtime,
		booking.ShowDate,
		booking.TotalAmount,
		booking.PaymentStatus,
	).Scan(&booking.ID, &booking.CreatedAt)
}

// ListByUser returns a user's bookings newest first, each joined with its
// movie's title.
func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]models.BookingWithMovie, error) {
	query := `
		SELECT b.id, b.user_id, b.movie_id, m.title, b.location, b.seats,
		       b.showtime, b.show_date, b.total_amount, b.payment_status, b.created_at
		FROM bookings b
		JOIN movies m ON m.id = b.movie_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.BookingWithMovie
	for rows.Next() {
		var b models.BookingWithMovie
		err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.MovieID,
			&b.MovieTitle,
			&b.Location,
			&b.Seats,
			&b.Showtime,
			&b.ShowDate,
			&b.TotalAmount,
			&b.PaymentStatus,
			&b.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}
