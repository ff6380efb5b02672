package service

import (
	"context"

	"cinebook/internal/auth"
	"cinebook/internal/database"
	"cinebook/internal/messaging"
	"cinebook/internal/models"
	"cinebook/internal/repository"
)

// StoreHealth is the injected store-availability capability queried before
// every operation, so an unreachable store becomes a dedicated
// service-unavailable failure instead of a generic one.
type StoreHealth interface {
	Available(ctx context.Context) bool
}

// Publisher emits domain events. Publish failures are logged by callers and
// never fail the originating operation.
type Publisher interface {
	Publish(subject string, data any) error
}

type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type MovieStore interface {
	List(ctx context.Context) ([]models.Movie, error)
	Search(ctx context.Context, q string) ([]models.Movie, error)
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	Create(ctx context.Context, movie *models.Movie) error
}

type BookingStore interface {
	Create(ctx context.Context, booking *models.Booking) error
	ListByUser(ctx context.Context, userID int64) ([]models.BookingWithMovie, error)
}

type Services struct {
	Users    *UserService
	Movies   *MovieService
	Bookings *BookingService
}

func NewServices(repos *repository.Repositories, db *database.DB, natsClient *messaging.NATSClient, tokens *auth.Tokens, bcryptCost int) *Services {
	return &Services{
		Users:    NewUserService(repos.Users, db, natsClient, tokens, bcryptCost),
		Movies:   NewMovieService(repos.Movies, db),
		Bookings: NewBookingService(repos.Bookings, repos.Movies, db, natsClient),
	}
}
