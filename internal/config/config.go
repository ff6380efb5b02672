package config

import (
	"os"
	"strconv"

	"cinebook/internal/auth"
	"cinebook/internal/database"
	"cinebook/internal/messaging"
)

type Config struct {
	Port      string
	GinMode   string
	LogLevel  string
	LogFormat string

	Database database.Config
	NATS     messaging.Config
	Auth     auth.Config
}

func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "5000"),
		GinMode:   getEnv("GIN_MODE", "debug"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		Database: database.Config{
			Host:               getEnv("DB_HOST", "localhost"),
			Port:               getEnvInt("DB_PORT", 5432),
			User:               getEnv("DB_USER", "cinebook"),
			Password:           getEnv("DB_PASSWORD", "cinebook"),
			DBName:             getEnv("DB_NAME", "cinebook"),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetimeMin: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 5),
			ConnMaxIdleTimeMin: getEnvInt("DB_CONN_MAX_IDLE_TIME_MIN", 1),
		},

		NATS: messaging.Config{
			URL:       getEnv("NATS_URL", "nats://localhost:4222"),
			ClusterID: getEnv("NATS_CLUSTER_ID", "cinebook"),
			ClientID:  getEnv("NATS_CLIENT_ID", "cinebook-api"),
		},

		Auth: auth.Config{
			Secret:       getEnv("JWT_SECRET", "dev-secret-change-me"),
			TokenTTLDays: getEnvInt("JWT_TTL_DAYS", 7),
			BcryptCost:   getEnvInt("BCRYPT_COST", 10),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
