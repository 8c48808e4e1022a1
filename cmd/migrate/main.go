// Command migrate applies or inspects the embedded database migrations.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"storefront-be/internal/config"
	"storefront-be/internal/database"
)

func main() {
	cfg := config.Load()

	dsn := pflag.String("dsn", cfg.DatabaseURL, "postgres connection string (defaults to DATABASE_URL)")
	command := pflag.StringP("command", "c", "up", "goose command: up, down, status, reset, version")
	attempts := pflag.Int("attempts", cfg.DBConnectAttempts, "connection attempts before giving up")
	pflag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if err := run(context.Background(), *dsn, *command, *attempts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, dsn, command string, attempts int) error {
	switch command {
	case "up", "down", "status", "reset", "version":
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	if dsn == "" {
		return errors.New("--dsn or DATABASE_URL is required")
	}

	db, err := database.NewConnection(ctx, dsn, attempts)
	if err != nil {
		return err
	}
	defer db.Close()

	return database.Migrate(ctx, db, command)
}
