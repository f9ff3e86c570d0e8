package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckforge/deckforge-api/internal/config"
	"github.com/deckforge/deckforge-api/internal/mocks"
	"github.com/deckforge/deckforge-api/internal/store"
)

func testApplication(runner *mocks.MockRunner, verifier *mocks.MockVerifier) *application {
	return &application{
		config: &config.Config{
			Sync: config.SyncConfig{Secret: "sync-secret"},
		},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		runner:   runner,
		verifier: verifier,
	}
}

func serve(t *testing.T, app *application, method, target, token string) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if method == http.MethodPost || method == http.MethodPut {
		body = strings.NewReader(`{}`)
	}
	req := httptest.NewRequest(method, target, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	app.setupRouter().ServeHTTP(recorder, req)
	return recorder
}

func TestRouterPublicRoutes(t *testing.T) {
	runner := &mocks.MockRunner{QueryResult: &store.Result{Sets: []store.RowSet{
		{{"pages": int64(1), "decks": int64(0)}},
		{},
	}}}
	app := testApplication(runner, &mocks.MockVerifier{Err: nil})

	public := []string{
		"/card/list",
		"/card/1",
		"/category/list",
		"/deck/list?limit=25&page=1",
		"/deck/1",
		"/deck/user/1/list?limit=25&page=1",
		"/echo/list",
		"/tag/list",
		"/user/1",
	}
	for _, target := range public {
		t.Run(target, func(t *testing.T) {
			recorder := serve(t, app, http.MethodGet, target, "")
			assert.NotEqual(t, http.StatusUnauthorized, recorder.Code)
			assert.NotEqual(t, http.StatusNotFound, recorder.Code, "route should be registered")
		})
	}
}

func TestRouterAuthGate(t *testing.T) {
	protected := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/profile/"},
		{http.MethodPut, "/profile/"},
		{http.MethodGet, "/deck/profile/list"},
		{http.MethodPost, "/deck/"},
		{http.MethodPut, "/deck/1"},
		{http.MethodDelete, "/deck/1"},
		{http.MethodPost, "/deck/1/card"},
		{http.MethodPut, "/deck/card/1"},
		{http.MethodDelete, "/deck/card/1"},
		{http.MethodPost, "/deck/1/vote"},
		{http.MethodDelete, "/deck/1/vote"},
	}

	for _, tc := range protected {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			runner := &mocks.MockRunner{}
			app := testApplication(runner, &mocks.MockVerifier{Subject: "ignored"})

			recorder := serve(t, app, tc.method, tc.target, "")

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.JSONEq(t, `{"errors":["Authentication"]}`, recorder.Body.String())
			assert.Zero(t, runner.CallCount())
		})
	}
}

func TestRouterProfileListNotShadowed(t *testing.T) {
	// /deck/profile/list must reach the profile listing, not the {deckId}
	// wildcard, when the caller is authenticated.
	runner := &mocks.MockRunner{QueryResult: &store.Result{Sets: []store.RowSet{
		{{"pages": int64(1), "decks": int64(0)}},
		{},
	}}}
	app := testApplication(runner, &mocks.MockVerifier{Subject: "auth0|u1"})

	recorder := serve(t, app, http.MethodGet, "/deck/profile/list?limit=25&page=1", "token")

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, runner.QueryCalls, 1)
	assert.Equal(t, "spProfile_DeckList", runner.QueryCalls[0].Proc)
}

func TestRouterHealth(t *testing.T) {
	app := testApplication(&mocks.MockRunner{}, &mocks.MockVerifier{})

	recorder := serve(t, app, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", recorder.Body.String())
}

func TestRouterSecureHeaders(t *testing.T) {
	app := testApplication(&mocks.MockRunner{}, &mocks.MockVerifier{})

	recorder := serve(t, app, http.MethodGet, "/health", "")

	assert.Equal(t, "nosniff", recorder.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", recorder.Header().Get("X-Frame-Options"))
}
