// Package main implements the entry point for the deckforge API server, the
// REST gateway in front of the card-game database. It loads configuration,
// sets up logging, establishes the shared connection pool, wires the
// handlers, and serves HTTP until shutdown.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/deckforge/deckforge-api/internal/config"
	"github.com/deckforge/deckforge-api/internal/platform/logger"
	"github.com/deckforge/deckforge-api/internal/platform/postgres"
	"github.com/deckforge/deckforge-api/internal/service/auth"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run migrations (up|down|status) and exit")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}

// run performs startup in order: configuration, logging, pool, optional
// migration mode, then the HTTP server. Any failure here is fatal; the
// service never starts degraded.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			appLogger.Error("failed to close database", "error", cerr)
		}
	}()

	if migrateCmd != "" {
		return runMigrations(db, migrateCmd, appLogger)
	}

	verifier, err := auth.NewJWTVerifier(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to set up token verifier: %w", err)
	}

	app := &application{
		config:   cfg,
		logger:   appLogger,
		db:       db,
		runner:   postgres.NewRunner(db, appLogger),
		verifier: verifier,
	}

	return app.startHTTPServer(context.Background(), app.setupRouter())
}
