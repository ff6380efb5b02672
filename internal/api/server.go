package api

import (
	"fmt"
	"log/slog"

	"cinebook/internal/auth"
	"cinebook/internal/config"
	"cinebook/internal/database"
	"cinebook/internal/handlers"
	"cinebook/internal/messaging"
	"cinebook/internal/metrics"
	"cinebook/internal/middleware"
	"cinebook/internal/repository"
	"cinebook/internal/service"

	"github.com/gin-gonic/gin"
)

type Server struct {
	router   *gin.Engine
	config   *config.Config
	db       *database.DB
	nats     *messaging.NATSClient
	services *service.Services
	tokens   *auth.Tokens
}

func NewServer(cfg *config.Config) (*Server, error) {
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := db.RunMigrations(); err != nil {
		// Happens when the store is down at startup; per-request checks
		// then surface the dedicated 503.
		slog.Warn("Migrations not applied", "error", err)
	}

	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		slog.Warn("NATS unavailable; domain events disabled", "error", err)
		natsClient = messaging.Disconnected()
	}

	tokens := auth.NewTokens(cfg.Auth)
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, db, natsClient, tokens, cfg.Auth.BcryptCost)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics())

	server := &Server{
		router:   router,
		config:   cfg,
		db:       db,
		nats:     natsClient,
		services: services,
		tokens:   tokens,
	}

	server.setupRoutes()

	return server, nil
}

func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.services)

	api := s.router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.Register)
			authGroup.POST("/login", h.Login)
		}

		movies := api.Group("/movies")
		movies.Use(middleware.RequireAuth(s.tokens))
		{
			movies.GET("", h.ListMovies)
			movies.GET("/search", h.SearchMovies)
		}

		bookings := api.Group("/bookings")
		bookings.Use(middleware.RequireAuth(s.tokens))
		{
			bookings.POST("", h.CreateBooking)
			bookings.GET("/my", h.ListMyBookings)
		}

		api.GET("/health", handlers.Health(s.db))
	}

	s.router.GET("/metrics", gin.WrapH(metrics.Handler()))
}

func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	return s.router.Run(addr)
}

// GetRouter exposes the router for tests.
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

func (s *Server) Cleanup() error {
	if s.nats != nil {
		if err := s.nats.Close(); err != nil {
			slog.Error("Error closing NATS connection", "error", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			slog.Error("Error closing database connection", "error", err)
			return err
		}
	}

	return nil
}
