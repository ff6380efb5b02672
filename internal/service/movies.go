package service

import (
	"context"
	"strings"

	"cinebook/internal/apperrors"
	"cinebook/internal/logger"
	"cinebook/internal/models"
)

type MovieService struct {
	movies MovieStore
	health StoreHealth
}

func NewMovieService(movies MovieStore, health StoreHealth) *MovieService {
	return &MovieService{movies: movies, health: health}
}

// List returns all movies sorted by title ascending. Movies stored without
// showtimes are rendered with the default slots.
func (s *MovieService) List(ctx context.Context) ([]models.MovieResponse, error) {
	if !s.health.Available(ctx) {
		return nil, apperrors.StoreDown()
	}

	movies, err := s.movies.List(ctx)
	if err != nil {
		return nil, apperrors.FromStore(err, "Error fetching movies")
	}

	return toMovieResponses(movies), nil
}

// Search matches titles containing q, case-insensitively. A search with zero
// matches creates a movie named after the query with the default locations
// and returns it as the sole result, so search doubles as an upsert for
// unknown titles.
func (s *MovieService) Search(ctx context.Context, q string) ([]models.MovieResponse, error) {
	if !s.health.Available(ctx) {
		return nil, apperrors.StoreDown()
	}

	q = strings.TrimSpace(q)
	if q == "" {
		return nil, apperrors.New(apperrors.Validation, "Query parameter q is required")
	}

	movies, err := s.movies.Search(ctx, q)
	if err != nil {
		return nil, apperrors.FromStore(err, "Error searching movie")
	}

	if len(movies) == 0 {
		movie := &models.Movie{
			Title:     q,
			Locations: models.DefaultLocations,
			Showtimes: models.DefaultShowtimes,
		}
		if err := s.movies.Create(ctx, movie); err != nil {
			return nil, apperrors.FromStore(err, "Error searching movie")
		}
		logger.WithContext(ctx).Info("Search miss created movie",
			"movie_id", movie.ID, "title", movie.Title)
		movies = append(movies, *movie)
	}

	return toMovieResponses(movies), nil
}

func toMovieResponses(movies []models.Movie) []models.MovieResponse {
	result := make([]models.MovieResponse, len(movies))
	for i, movie := range movies {
		showtimes := movie.Showtimes
		if len(showtimes) == 0 {
			showtimes = models.DefaultShowtimes
		}
		result[i] = models.MovieResponse{
			ID:        movie.ID,
			Title:     movie.Title,
			Locations: movie.Locations,
			Showtimes: showtimes,
			CreatedAt: movie.CreatedAt,
		}
	}
	return result
}
