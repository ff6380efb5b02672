package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
)

type DB struct {
	*sql.DB
}

type Config struct {
	Host               string
	Port               int
	User               string
	Password           string
	DBName             string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	ConnMaxIdleTimeMin int
}

// Connect opens the connection pool. An unreachable database is not an
// error here: the server still starts and answers service-unavailable per
// request until the store comes up, so reachability is only logged.
func Connect(cfg Config) (*DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMin) * time.Minute)
	db.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTimeMin) * time.Minute)

	if err := db.Ping(); err != nil {
		slog.Warn("Database not reachable; requests will report service unavailable until it is",
			"host", cfg.Host, "port", cfg.Port, "dbname", cfg.DBName, "error", err)
	} else {
		slog.Info("Connected to database",
			"host", cfg.Host, "port", cfg.Port, "dbname", cfg.DBName,
			"max_open_conns", cfg.MaxOpenConns, "max_idle_conns", cfg.MaxIdleConns)
	}

	return &DB{db}, nil
}

// Available reports whether the store is reachable right now. Services query
// it before each operation so connectivity loss surfaces as a dedicated
// service-unavailable response instead of a generic failure.
func (db *DB) Available(ctx context.Context) bool {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return db.PingContext(pingCtx) == nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
