package config

import (
	"os"
	"strconv"
	"sync"
)

// Config holds configuration for the relational store
type Config struct {
	// PostgreSQL
	PostgresURI string

	// Connection pool. A load run is sequential, so one connection is enough.
	MaxOpenConns           int
	ConnMaxLifetimeMinutes int
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration instance
func GetConfig() *Config {
	once.Do(func() {
		config = loadConfig()
	})
	return config
}

func loadConfig() *Config {
	return &Config{
		// PostgreSQL
		PostgresURI: getEnv("POSTGRES_URI", ""),

		// Pool
		MaxOpenConns:           getEnvInt("DB_MAX_OPEN_CONNS", 1),
		ConnMaxLifetimeMinutes: getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 5),
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
		i, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return i
	}
	return defaultValue
}
