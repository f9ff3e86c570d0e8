// Package middleware provides the request middleware chain: trace ids,
// passive identity extraction, the authentication gate, and security headers.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/deckforge/deckforge-api/internal/api/shared"
	"github.com/deckforge/deckforge-api/internal/service/auth"
)

// IdentityMiddleware extracts a verified identity from the Authorization
// header and attaches it to the request context. It runs on every route,
// public ones included, so unauthenticated endpoints can personalize results
// when a valid token happens to be present. It never rejects: requests with
// no token, a malformed header, or a failed verification carry on without an
// identity, and the RequireAuth gate decides later whether that matters.
type IdentityMiddleware struct {
	verifier auth.TokenVerifier
}

// NewIdentityMiddleware creates an IdentityMiddleware with the given verifier.
func NewIdentityMiddleware(verifier auth.TokenVerifier) *IdentityMiddleware {
	return &IdentityMiddleware{verifier: verifier}
}

// Resolve is the passive identity-extraction stage.
func (m *IdentityMiddleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		subject, err := m.verifier.Verify(r.Context(), token)
		if err != nil {
			slog.Debug("bearer token did not verify, continuing unauthenticated",
				slog.String("trace_id", shared.GetTraceID(r.Context())))
			next.ServeHTTP(w, r)
			return
		}

		ctx := shared.SetUserID(r.Context(), subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth gates authenticated endpoints. If no verified identity was
// attached by Resolve, the request short-circuits with the Authentication
// signal before the handler runs.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := shared.GetUserID(r.Context()); !ok {
			shared.RespondWithErrors(w, r, http.StatusUnauthorized, []string{"Authentication"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserID returns the request's verified identity subject, or "" when the
// request is unauthenticated. Procedures receive the empty value as NULL.
func UserID(r *http.Request) string {
	subject, _ := shared.GetUserID(r.Context())
	return subject
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Any other shape is treated as no token at all.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
