package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"

	"storefront-be/migrations"
)

const (
	dialect       = "postgres"
	migrationsDir = "."
	pingTimeout   = 5 * time.Second
)

// NewConnection opens the pool and pings it, backing off between attempts
// while the database is still starting up.
func NewConnection(ctx context.Context, databaseURL string, attempts int) (*sql.DB, error) {
	const op = "database.NewConnection"
	log := slog.With("op", op)

	db, err := sql.Open(dialect, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open database: %w", op, err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	backoff := retry.WithMaxRetries(uint64(max(attempts-1, 0)), retry.NewExponential(500*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			log.Warn("database not ready", "err", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: failed to ping database: %w", op, err)
	}

	log.Info("connected to database")
	return db, nil
}

// RunMigrations applies the embedded goose migrations
func RunMigrations(ctx context.Context, db *sql.DB) error {
	const op = "database.RunMigrations"

	if err := setupGoose(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("%s: failed to run migrations: %w", op, err)
	}

	slog.Info("database migrations completed", "op", op)
	return nil
}

// Migrate runs a single goose command (up, down, status, reset, version).
func Migrate(ctx context.Context, db *sql.DB, command string) error {
	const op = "database.Migrate"

	if err := setupGoose(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := goose.RunContext(ctx, command, db, migrationsDir); err != nil {
		return fmt.Errorf("%s: goose %s: %w", op, command, err)
	}
	return nil
}

func setupGoose() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}
