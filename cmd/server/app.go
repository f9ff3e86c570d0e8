package main

import (
	"database/sql"
	"log/slog"

	"github.com/deckforge/deckforge-api/internal/config"
	"github.com/deckforge/deckforge-api/internal/service/auth"
	"github.com/deckforge/deckforge-api/internal/store"
)

// application holds the process-wide dependencies handed to every request:
// the configuration, the logger, the shared connection pool, the procedure
// runner over it, and the token verifier. Nothing here is request-scoped.
type application struct {
	config   *config.Config
	logger   *slog.Logger
	db       *sql.DB
	runner   store.ProcedureRunner
	verifier auth.TokenVerifier
}
