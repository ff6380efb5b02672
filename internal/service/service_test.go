package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"cinebook/internal/auth"
	"cinebook/internal/models"
)

// In-memory fakes standing in for the Postgres repositories, so the service
// logic can be exercised without a live store.

type fakeHealth struct {
	down bool
}

func (f *fakeHealth) Available(ctx context.Context) bool {
	return !f.down
}

type fakePublisher struct {
	subjects []string
	err      error
}

func (f *fakePublisher) Publish(subject string, data any) error {
	if f.err != nil {
		return f.err
	}
	f.subjects = append(f.subjects, subject)
	return nil
}

type fakeUserStore struct {
	users     map[string]*models.User
	nextID    int64
	getErr    error
	createErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	copied := *user
	f.users[user.Email] = &copied
	return nil
}

type fakeMovieStore struct {
	movies    []models.Movie
	nextID    int64
	listErr   error
	searchErr error
	createErr error
}

func (f *fakeMovieStore) List(ctx context.Context) ([]models.Movie, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	result := append([]models.Movie(nil), f.movies...)
	sort.Slice(result, func(i, j int) bool { return result[i].Title < result[j].Title })
	return result, nil
}

func (f *fakeMovieStore) Search(ctx context.Context, q string) ([]models.Movie, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	var result []models.Movie
	for _, m := range f.movies {
		if strings.Contains(strings.ToLower(m.Title), strings.ToLower(q)) {
			result = append(result, m)
		}
	}
	return result, nil
}

func (f *fakeMovieStore) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	for _, m := range f.movies {
		if m.ID == id {
			copied := m
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeMovieStore) Create(ctx context.Context, movie *models.Movie) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	movie.ID = f.nextID
	movie.CreatedAt = time.Now()
	f.movies = append(f.movies, *movie)
	return nil
}

type fakeBookingStore struct {
	bookings  []models.Booking
	titles    map[int64]string
	nextID    int64
	createErr error
	listErr   error
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{titles: make(map[int64]string)}
}

func (f *fakeBookingStore) Create(ctx context.Context, booking *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	booking.ID = f.nextID
	booking.CreatedAt = time.Now()
	f.bookings = append(f.bookings, *booking)
	return nil
}

func (f *fakeBookingStore) ListByUser(ctx context.Context, userID int64) ([]models.BookingWithMovie, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var result []models.BookingWithMovie
	for i := len(f.bookings) - 1; i >= 0; i-- {
		b := f.bookings[i]
		if b.UserID != userID {
			continue
		}
		result = append(result, models.BookingWithMovie{
			Booking:    b,
			MovieTitle: f.titles[b.MovieID],
		})
	}
	return result, nil
}

var errConnRefused = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

func testTokens() *auth.Tokens {
	return auth.NewTokens(auth.Config{Secret: "test-secret", TokenTTLDays: 7})
}
