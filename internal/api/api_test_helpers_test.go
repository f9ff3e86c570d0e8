package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/deckforge/deckforge-api/internal/api/shared"
	"github.com/deckforge/deckforge-api/internal/store"
)

// testLogger discards output so handler tests stay quiet.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// doRequest mounts the route on a chi router (so URL params resolve), applies
// the identity subject when given, and performs the request.
func doRequest(
	t *testing.T,
	method, pattern string,
	handler http.HandlerFunc,
	target string,
	body any,
	subject string,
) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	r.MethodFunc(method, pattern, handler)

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if subject != "" {
		req = req.WithContext(shared.SetUserID(req.Context(), subject))
	}

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

// decodeBody decodes a JSON response body into a generic map.
func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

// result builds a store.Result from literal row-sets.
func result(sets ...store.RowSet) *store.Result {
	return &store.Result{Sets: sets}
}
