package api

import (
	"log/slog"
	"net/http"

	"github.com/deckforge/deckforge-api/internal/api/shared"
	"github.com/deckforge/deckforge-api/internal/store"
	"github.com/deckforge/deckforge-api/internal/validation"
)

// EchoHandler handles echo-related HTTP requests.
type EchoHandler struct {
	runner store.ProcedureRunner
	logger *slog.Logger
}

// NewEchoHandler creates a new EchoHandler.
func NewEchoHandler(runner store.ProcedureRunner, logger *slog.Logger) *EchoHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for EchoHandler")
	}
	return &EchoHandler{
		runner: runner,
		logger: logger.With(slog.String("component", "echo_handler")),
	}
}

// List handles GET /echo/list.
func (h *EchoHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.runner.Query(r.Context(), "spEcho_List", auth0Param(r))
	if err != nil {
		respondDatabase(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, listBody(result.Set(0)))
}

// Get handles GET /echo/{echoId}.
func (h *EchoHandler) Get(w http.ResponseWriter, r *http.Request) {
	params, errs := validation.Params(r,
		validation.Field{Name: "echoId", In: validation.Path, Required: true, Numeric: true},
	)
	if errs != nil {
		respondValidation(w, r, errs)
		return
	}

	result, err := h.runner.Query(r.Context(), "spEcho_Get",
		auth0Param(r),
		store.BigInt("EchoId", params["echoId"]),
	)
	if err != nil {
		respondDatabase(w, r, err)
		return
	}

	echo := result.First()
	if echo == nil {
		respondNotFound(w, r, "Echo not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, echo)
}
