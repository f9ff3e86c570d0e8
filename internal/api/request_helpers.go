package api

import (
	"net/http"

	"github.com/deckforge/deckforge-api/internal/api/middleware"
	"github.com/deckforge/deckforge-api/internal/store"
)

// auth0Param builds the user-context parameter passed as the first input to
// nearly every procedure. Unauthenticated requests bind NULL so procedures
// can still personalize when an identity happens to be present.
func auth0Param(r *http.Request) store.Param {
	if subject := middleware.UserID(r); subject != "" {
		return store.Text("Auth0Id", subject)
	}
	return store.Text("Auth0Id", nil)
}

// optional returns the validated value for name, or nil when the optional
// field was absent, binding SQL NULL.
func optional(params map[string]string, name string) any {
	if v, ok := params[name]; ok {
		return v
	}
	return nil
}
