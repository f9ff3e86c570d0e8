package api

import (
	"log/slog"
	"net/http"

	"github.com/deckforge/deckforge-api/internal/api/shared"
	"github.com/deckforge/deckforge-api/internal/moderation"
	"github.com/deckforge/deckforge-api/internal/store"
)

// ProfileHandler handles the calling user's own profile.
type ProfileHandler struct {
	runner store.ProcedureRunner
	logger *slog.Logger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(runner store.ProcedureRunner, logger *slog.Logger) *ProfileHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ProfileHandler")
	}
	return &ProfileHandler{
		runner: runner,
		logger: logger.With(slog.String("component", "profile_handler")),
	}
}

// Get handles GET /profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.runner.Query(r.Context(), "spProfile_Get", auth0Param(r))
	if err != nil {
		respondDatabase(w, r, err)
		return
	}

	profile := result.First()
	if profile == nil {
		respondNotFound(w, r, "User not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// Update handles PUT /profile. The nickname is profanity-screened before the
// write is attempted.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Nickname string `json:"nickname" validate:"required"`
	}
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		respondValidation(w, r, shared.ValidationErrors(err))
		return
	}

	if moderation.IsTextExplicit(req.Nickname) {
		respondValidation(w, r, []string{"Username must not include profanity"})
		return
	}

	success, err := h.runner.Exec(r.Context(), "spProfile_Update",
		auth0Param(r),
		store.Text("Nickname", req.Nickname),
	)
	if err != nil {
		respondDatabase(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.SuccessResponse{Success: success})
}
