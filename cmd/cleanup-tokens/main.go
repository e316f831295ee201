// Command cleanup-tokens deletes expired and revoked refresh tokens.
//
// Usage:
//
//	cleanup-tokens
//
// Reads the same configuration as the server (CONFIG_PATH or environment).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/wigac/wigac-backend/internal/adapter/postgres"
	"github.com/wigac/wigac-backend/internal/adapter/postgres/token"
	"github.com/wigac/wigac-backend/internal/app"
	"github.com/wigac/wigac-backend/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cleanup-tokens: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.App, cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	count, err := token.New(pool).DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("cleanup tokens: %w", err)
	}

	logger.Info("deleted expired refresh tokens", "count", count)
	return nil
}
