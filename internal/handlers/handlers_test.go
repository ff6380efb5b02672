package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cinebook/internal/auth"
	"cinebook/internal/middleware"
	"cinebook/internal/models"
	"cinebook/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// In-memory stores backing the full router, so requests run end to end
// without Postgres or NATS.

type fakeHealth struct {
	down bool
}

func (f *fakeHealth) Available(ctx context.Context) bool { return !f.down }

type noopPublisher struct{}

func (noopPublisher) Publish(subject string, data any) error { return nil }

type fakeUsers struct {
	byEmail map[string]*models.User
	nextID  int64
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUsers) Create(ctx context.Context, user *models.User) error {
	f.nextID++
	user.ID = f.nextID
	copied := *user
	f.byEmail[user.Email] = &copied
	return nil
}

type fakeMovies struct {
	movies []models.Movie
	nextID int64
}

func (f *fakeMovies) List(ctx context.Context) ([]models.Movie, error) {
	return append([]models.Movie(nil), f.movies...), nil
}

func (f *fakeMovies) Search(ctx context.Context, q string) ([]models.Movie, error) {
	var result []models.Movie
	for _, m := range f.movies {
		if strings.Contains(strings.ToLower(m.Title), strings.ToLower(q)) {
			result = append(result, m)
		}
	}
	return result, nil
}

func (f *fakeMovies) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	for _, m := range f.movies {
		if m.ID == id {
			copied := m
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeMovies) Create(ctx context.Context, movie *models.Movie) error {
	f.nextID++
	movie.ID = f.nextID
	f.movies = append(f.movies, *movie)
	return nil
}

type fakeBookings struct {
	bookings []models.Booking
	titles   map[int64]string
	nextID   int64
}

func (f *fakeBookings) Create(ctx context.Context, booking *models.Booking) error {
	f.nextID++
	booking.ID = f.nextID
	f.bookings = append(f.bookings, *booking)
	return nil
}

func (f *fakeBookings) ListByUser(ctx context.Context, userID int64) ([]models.BookingWithMovie, error) {
	var result []models.BookingWithMovie
	for i := len(f.bookings) - 1; i >= 0; i-- {
		b := f.bookings[i]
		if b.UserID != userID {
			continue
		}
		result = append(result, models.BookingWithMovie{Booking: b, MovieTitle: f.titles[b.MovieID]})
	}
	return result, nil
}

type testEnv struct {
	router *gin.Engine
	health *fakeHealth
	movies *fakeMovies
}

func setupRouter() *testEnv {
	gin.SetMode(gin.TestMode)

	health := &fakeHealth{}
	tokens := auth.NewTokens(auth.Config{Secret: "test-secret", TokenTTLDays: 7})

	movies := &fakeMovies{
		nextID: 1,
		movies: []models.Movie{
			{
				ID:        1,
				Title:     "Pathaan",
				Locations: []string{"Mumbai", "Delhi"},
				Showtimes: []string{"9:30 AM", "7:00 PM"},
			},
		},
	}
	bookings := &fakeBookings{titles: map[int64]string{1: "Pathaan"}}

	services := &service.Services{
		Users:    service.NewUserService(&fakeUsers{byEmail: map[string]*models.User{}}, health, noopPublisher{}, tokens, bcrypt.MinCost),
		Movies:   service.NewMovieService(movies, health),
		Bookings: service.NewBookingService(bookings, movies, health, noopPublisher{}),
	}
	h := NewHandlers(services)

	r := gin.New()
	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.Register)
			authGroup.POST("/login", h.Login)
		}

		movieGroup := api.Group("/movies")
		movieGroup.Use(middleware.RequireAuth(tokens))
		{
			movieGroup.GET("", h.ListMovies)
			movieGroup.GET("/search", h.SearchMovies)
		}

		bookingGroup := api.Group("/bookings")
		bookingGroup.Use(middleware.RequireAuth(tokens))
		{
			bookingGroup.POST("", h.CreateBooking)
			bookingGroup.GET("/my", h.ListMyBookings)
		}

		api.GET("/health", Health(health))
	}

	return &testEnv{router: r, health: health, movies: movies}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func registerUser(t *testing.T, env *testEnv, email string) string {
	t.Helper()

	w, resp := doJSON(t, env.router, "POST", "/api/auth/register", "", models.RegisterRequest{
		Name: "Alice", Email: email, Password: "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var authResp models.AuthResponse
	require.NoError(t, json.Unmarshal(resp.Data, &authResp))
	require.NotEmpty(t, authResp.Token)
	return authResp.Token
}

func TestRegisterEndpoint(t *testing.T) {
	env := setupRouter()

	w, resp := doJSON(t, env.router, "POST", "/api/auth/register", "", models.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "secret123",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "User registered successfully", resp.Message)

	var authResp models.AuthResponse
	require.NoError(t, json.Unmarshal(resp.Data, &authResp))
	assert.Equal(t, "alice@example.com", authResp.User.Email)
	assert.NotEmpty(t, authResp.Token)
}

func TestRegisterEndpointMissingFields(t *testing.T) {
	env := setupRouter()

	w, resp := doJSON(t, env.router, "POST", "/api/auth/register", "", gin.H{"email": "alice@example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Please provide name, email, and password", resp.Message)
}

func TestRegisterEndpointDuplicate(t *testing.T) {
	env := setupRouter()
	registerUser(t, env, "alice@example.com")

	w, resp := doJSON(t, env.router, "POST", "/api/auth/register", "", models.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "secret123",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User with this email already exists", resp.Message)
}

func TestLoginEndpoint(t *testing.T) {
	env := setupRouter()
	registerUser(t, env, "alice@example.com")

	w, resp := doJSON(t, env.router, "POST", "/api/auth/login", "", models.LoginRequest{
		Email: "alice@example.com", Password: "secret123",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Login successful", resp.Message)

	w, resp = doJSON(t, env.router, "POST", "/api/auth/login", "", models.LoginRequest{
		Email: "alice@example.com", Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", resp.Message)
}

func TestAuthRequired(t *testing.T) {
	env := setupRouter()

	w, resp := doJSON(t, env.router, "GET", "/api/movies", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authorization token required", resp.Message)

	w, resp = doJSON(t, env.router, "GET", "/api/movies", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid or expired token", resp.Message)
}

func TestListMoviesEndpoint(t *testing.T) {
	env := setupRouter()
	token := registerUser(t, env, "alice@example.com")

	w, resp := doJSON(t, env.router, "GET", "/api/movies", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Movies fetched successfully", resp.Message)
	require.NotNil(t, resp.Count)
	assert.Equal(t, 1, *resp.Count)

	var movies []models.MovieResponse
	require.NoError(t, json.Unmarshal(resp.Data, &movies))
	require.Len(t, movies, 1)
	assert.Equal(t, "Pathaan", movies[0].Title)
}

func TestSearchMoviesEndpoint(t *testing.T) {
	env := setupRouter()
	token := registerUser(t, env, "alice@example.com")

	// A miss creates the movie with the default locations.
	w, resp := doJSON(t, env.router, "GET", "/api/movies/search?q=Oppenheimer", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Search completed", resp.Message)

	var movies []models.MovieResponse
	require.NoError(t, json.Unmarshal(resp.Data, &movies))
	require.Len(t, movies, 1)
	assert.Equal(t, "Oppenheimer", movies[0].Title)
	assert.Equal(t, models.DefaultLocations, movies[0].Locations)

	// Missing query parameter.
	w, resp = doJSON(t, env.router, "GET", "/api/movies/search", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Query parameter q is required", resp.Message)
}

func TestBookingFlow(t *testing.T) {
	env := setupRouter()
	token := registerUser(t, env, "alice@example.com")

	w, resp := doJSON(t, env.router, "POST", "/api/bookings", token, models.CreateBookingRequest{
		MovieID:  1,
		Location: "Mumbai",
		Seats:    3,
		Showtime: "9:30 AM",
		ShowDate: "2026-09-15",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Booking confirmed successfully", resp.Message)

	var conf models.BookingConfirmation
	require.NoError(t, json.Unmarshal(resp.Data, &conf))
	assert.Equal(t, "Pathaan", conf.Movie)
	assert.Equal(t, int64(750), conf.TotalAmount)
	assert.Equal(t, models.PaymentStatusPaid, conf.PaymentStatus)

	w, resp = doJSON(t, env.router, "GET", "/api/bookings/my", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bookings fetched successfully", resp.Message)
	require.NotNil(t, resp.Count)
	assert.Equal(t, 1, *resp.Count)

	var mine []models.BookingConfirmation
	require.NoError(t, json.Unmarshal(resp.Data, &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, conf.BookingID, mine[0].BookingID)
	assert.Equal(t, "Pathaan", mine[0].Movie)
}

func TestBookingValidationEndpoint(t *testing.T) {
	env := setupRouter()
	token := registerUser(t, env, "alice@example.com")

	w, resp := doJSON(t, env.router, "POST", "/api/bookings", token, models.CreateBookingRequest{
		MovieID: 1, Location: "Mumbai", Seats: 51, Showtime: "9:30 AM", ShowDate: "2026-09-15",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Seats must be between 1 and 50", resp.Message)

	w, resp = doJSON(t, env.router, "POST", "/api/bookings", token, models.CreateBookingRequest{
		MovieID: 999, Location: "Mumbai", Seats: 2, Showtime: "9:30 AM", ShowDate: "2026-09-15",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Movie not found", resp.Message)
}

func TestStoreDownEndpoint(t *testing.T) {
	env := setupRouter()
	token := registerUser(t, env, "alice@example.com")
	env.health.down = true

	w, resp := doJSON(t, env.router, "GET", "/api/movies", token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Database not connected. Please start the database and restart the server.", resp.Message)
}

func TestHealthEndpoint(t *testing.T) {
	env := setupRouter()

	w, resp := doJSON(t, env.router, "GET", "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Server is running", resp.Message)

	var data map[string]string
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "connected", data["database"])

	// Health stays 200 with the store down; only the flag flips.
	env.health.down = true
	w, resp = doJSON(t, env.router, "GET", "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "disconnected", data["database"])
}
