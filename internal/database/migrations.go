package database

import (
	"fmt"
	"log/slog"
)

func (db *DB) RunMigrations() error {
	slog.Info("Running database migrations...")

	migrations := []string{
		createUsersTable,
		createMoviesTable,
		createBookingsTable,
		createBookingsUserIndex,
	}

	for i, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	slog.Info("All migrations completed successfully")
	return nil
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    id BIGSERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    email VARCHAR(255) UNIQUE NOT NULL,
    password_hash VARCHAR(100) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createMoviesTable = `
CREATE TABLE IF NOT EXISTS movies (
    id BIGSERIAL PRIMARY KEY,
    title VARCHAR(500) NOT NULL,
    locations TEXT[] NOT NULL,
    showtimes TEXT[] NOT NULL DEFAULT '{"10:00 AM","1:30 PM","4:30 PM","7:30 PM"}',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),

    CHECK (cardinality(locations) > 0),
    CHECK (cardinality(showtimes) > 0)
);`

// Bookings reference users and movies by opaque id on purpose: referential
// checks happen in application code and rows are never deleted, so there are
// no FK constraints here.
const createBookingsTable = `
CREATE TABLE IF NOT EXISTS bookings (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL,
    movie_id BIGINT NOT NULL,
    location VARCHAR(100) NOT NULL,
    seats INTEGER NOT NULL,
    showtime VARCHAR(20) NOT NULL,
    show_date DATE NOT NULL,
    total_amount BIGINT NOT NULL,
    payment_status VARCHAR(20) NOT NULL DEFAULT 'PAID',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),

    CHECK (seats >= 1 AND seats <= 50),
    CHECK (total_amount >= 0),
    CHECK (payment_status IN ('PENDING', 'PAID'))
);`

const createBookingsUserIndex = `
CREATE INDEX IF NOT EXISTS bookings_user_id_created_at_idx
ON bookings (user_id, created_at DESC);`
