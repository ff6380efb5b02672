package repository

import (
	"context"
	"database/sql"

	"cinebook/internal/database"
	"cinebook/internal/models"

	"github.com/lib/pq"
)

type MovieRepository struct {
	db *database.DB
}

func NewMovieRepository(db *database.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// List returns all movies ordered by title ascending.
func (r *MovieRepository) List(ctx context.Context) ([]models.Movie, error) {
	query := `
		SELECT id, title, locations, showtimes, created_at
		FROM movies
		ORDER BY title ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMovies(rows)
}

// Search matches titles containing q, case-insensitively.
func (r *MovieRepository) Search(ctx context.Context, q string) ([]models.Movie, error) {
	query := `
		SELECT id, title, locations, showtimes, created_at
		FROM movies
		WHERE title ILIKE '%' || $1 || '%'
		ORDER BY title ASC`

	rows, err := r.db.QueryContext(ctx, query, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMovies(rows)
}

func (r *MovieRepository) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	movie := &models.Movie{}
	query := `
		SELECT id, title, locations, showtimes, created_at
		FROM movies
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		pq.Array(&movie.Locations),
		pq.Array(&movie.Showtimes),
		&movie.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return movie, err
}

func (r *MovieRepository) Create(ctx context.Context, movie *models.Movie) error {
	query := `
		INSERT INTO movies (title, locations, showtimes)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		movie.Title,
		pq.Array(movie.Locations),
		pq.Array(movie.Showtimes),
	).Scan(&movie.ID, &movie.CreatedAt)
}

// DeleteAll clears the movies table. Used by the seed tool only.
func (r *MovieRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM movies`)
	return err
}

func scanMovies(rows *sql.Rows) ([]models.Movie, error) {
	var movies []models.Movie
	for rows.Next() {
		var movie models.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			pq.Array(&movie.Locations),
			pq.Array(&movie.Showtimes),
			&movie.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}
	return movies, rows.Err()
}
