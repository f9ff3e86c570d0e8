package api

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/deckforge/deckforge-api/internal/api/shared"
	"github.com/deckforge/deckforge-api/internal/store"
	"github.com/deckforge/deckforge-api/internal/validation"
)

// UserHandler handles public user lookups and the identity-provider sync
// webhook.
type UserHandler struct {
	runner     store.ProcedureRunner
	syncSecret string
	logger     *slog.Logger
}

// NewUserHandler creates a new UserHandler. syncSecret gates POST /user/sync.
func NewUserHandler(runner store.ProcedureRunner, syncSecret string, logger *slog.Logger) *UserHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}
	return &UserHandler{
		runner:     runner,
		syncSecret: syncSecret,
		logger:     logger.With(slog.String("component", "user_handler")),
	}
}

// Get handles GET /user/{userId}. Public; identity is resolved passively so
// the procedure can scope what it returns.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	params, errs := validation.Params(r,
		validation.Field{Name: "userId", In: validation.Path, Required: true, Numeric: true},
	)
	if errs != nil {
		respondValidation(w, r, errs)
		return
	}

	result, err := h.runner.Query(r.Context(), "spUser_Get",
		auth0Param(r),
		store.Int("UserId", params["userId"]),
	)
	if err != nil {
		respondDatabase(w, r, err)
		return
	}

	user := result.First()
	if user == nil {
		respondNotFound(w, r, "User not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// syncRequest is the body the identity provider posts after it provisions a
// user. userId here is the provider's subject identifier, not an internal id.
type syncRequest struct {
	UserID string `json:"userId" validate:"required"`
	Email  string `json:"email"  validate:"required"`
}

// Sync handles POST /user/sync. The caller authenticates with a shared
// secret in the code query parameter rather than a bearer token; a mismatch
// is a 403 and the procedure is never invoked.
func (h *UserHandler) Sync(w http.ResponseWriter, r *http.Request) {
	params, errs := validation.Params(r,
		validation.Field{Name: "code", In: validation.Query, Required: true},
	)
	if errs != nil {
		respondValidation(w, r, errs)
		return
	}

	var req syncRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		respondValidation(w, r, shared.ValidationErrors(err))
		return
	}

	if subtle.ConstantTimeCompare([]byte(params["code"]), []byte(h.syncSecret)) != 1 {
		h.logger.Warn("user sync rejected: secret mismatch",
			slog.String("trace_id", shared.GetTraceID(r.Context())))
		shared.RespondWithErrors(w, r, http.StatusForbidden, []string{"Unauthorized"})
		return
	}

	success, err := h.runner.Exec(r.Context(), "spUser_Sync",
		store.Text("Auth0Id", req.UserID),
		store.Text("Email", req.Email),
	)
	if err != nil {
		respondDatabase(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.SuccessResponse{Success: success})
}
