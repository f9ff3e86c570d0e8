package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/deckforge/deckforge-api/internal/redact"
)

// ErrorResponse is the uniform error body: a non-empty list of failure
// descriptions. Internal error detail never appears here; it goes only to
// the server-side log.
type ErrorResponse struct {
	Errors []string `json:"errors"`
}

// SuccessResponse is the uniform body for write endpoints.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithErrors writes the uniform error body with the given status code.
func RespondWithErrors(w http.ResponseWriter, r *http.Request, status int, errs []string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"errors", errs,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{Errors: errs})
}

// RespondWithErrorsAndLog writes the uniform error body and logs the detailed
// cause server-side. The client only ever sees the sanitized descriptions;
// err is redacted before logging so driver messages cannot leak credentials
// or SQL into the log sink either.
func RespondWithErrorsAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	errs []string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
	}
	if err != nil {
		logAttrs = append(logAttrs, slog.String("error", redact.Error(err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	} else if err != nil {
		// 4xx with an underlying cause (database failures masked as client
		// errors) still matters operationally.
		logLevel = slog.LevelWarn
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{Errors: errs})
}
