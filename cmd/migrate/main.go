// Command migrate manages the database schema.
//
// Usage:
//
//	migrate [up|down|status]
//
// Reads the same configuration as the server (CONFIG_PATH or environment).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/wigac/wigac-backend/internal/app"
	"github.com/wigac/wigac-backend/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.App, cfg.Log)

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	if command == "up" {
		return app.Migrate(ctx, cfg.Database.DSN, cfg.Migrations.Dir, logger)
	}

	provider, closeDB, err := app.NewMigrator(cfg.Database.DSN, cfg.Migrations.Dir)
	if err != nil {
		return err
	}
	defer closeDB() //nolint:errcheck

	switch command {
	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("goose down: %w", err)
		}
		logger.Info("migration rolled back", slog.Int64("version", r.Source.Version))
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("goose status: %w", err)
		}
		for _, s := range statuses {
			fmt.Printf("%-8s %05d %s\n", s.State, s.Source.Version, s.Source.Path)
		}
	default:
		return fmt.Errorf("unknown command %q (want up, down or status)", command)
	}
	return nil
}
