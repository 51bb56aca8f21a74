package db

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/conference-corpus-loader/pkg/schema/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// ErrMissingPostgresURI is returned when no connection string is configured.
var ErrMissingPostgresURI = errors.New("POSTGRES_URI is required")

var (
	pgDB   *sqlx.DB
	pgOnce sync.Once
	pgMu   sync.RWMutex
)

// InitPostgres initializes the PostgreSQL database connection.
// An explicit uri overrides the configured POSTGRES_URI.
func InitPostgres(ctx context.Context, uri string) error {
	var initErr error
	pgOnce.Do(func() {
		cfg := config.GetConfig()
		if uri == "" {
			uri = cfg.PostgresURI
		}
		if uri == "" {
			initErr = ErrMissingPostgresURI
			return
		}

		conn, err := sqlx.ConnectContext(ctx, "postgres", uri)
		if err != nil {
			initErr = fmt.Errorf("failed to connect to PostgreSQL: %w", err)
			return
		}

		maxOpen := cfg.MaxOpenConns
		if maxOpen < 1 {
			maxOpen = 1
		}
		conn.SetMaxOpenConns(maxOpen)
		conn.SetMaxIdleConns(maxOpen)
		conn.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

		if err := conn.PingContext(ctx); err != nil {
			conn.Close()
			initErr = fmt.Errorf("failed to ping PostgreSQL: %w", err)
			return
		}

		pgMu.Lock()
		pgDB = conn
		pgMu.Unlock()
	})
	return initErr
}

// GetPostgres returns the PostgreSQL database instance
func GetPostgres() *sqlx.DB {
	pgMu.RLock()
	defer pgMu.RUnlock()
	return pgDB
}

// ClosePostgres closes the PostgreSQL database connection
func ClosePostgres() error {
	pgMu.Lock()
	defer pgMu.Unlock()
	if pgDB != nil {
		return pgDB.Close()
	}
	return nil
}
