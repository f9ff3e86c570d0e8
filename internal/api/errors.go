package api

import (
	"net/http"

	"github.com/deckforge/deckforge-api/internal/api/shared"
)

// SignalDatabase is the opaque client-facing name for any procedure failure.
// The taxonomy is closed: procedure failures surface as Database
// (deliberately a 400, masking internal failures as client errors) and
// missing identity as the middleware's Authentication signal. Everything
// else a handler can produce is either a validation list, a not-found
// message, or the sync-secret Unauthorized.
const SignalDatabase = "Database"

// respondDatabase normalizes a procedure failure: full detail goes to the
// server log (redacted), the client gets the opaque Database signal.
func respondDatabase(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorsAndLog(w, r, http.StatusBadRequest, []string{SignalDatabase}, err)
}

// respondNotFound emits the resource-specific not-found message.
func respondNotFound(w http.ResponseWriter, r *http.Request, message string) {
	shared.RespondWithErrors(w, r, http.StatusNotFound, []string{message})
}

// respondValidation rejects the request with the complete per-field list.
func respondValidation(w http.ResponseWriter, r *http.Request, errs []string) {
	shared.RespondWithErrors(w, r, http.StatusBadRequest, errs)
}
