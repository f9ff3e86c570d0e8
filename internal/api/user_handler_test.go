package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckforge/deckforge-api/internal/mocks"
	"github.com/deckforge/deckforge-api/internal/store"
)

const testSyncSecret = "sync-shared-secret"

func TestUserGet(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		runner := &mocks.MockRunner{QueryResult: result(store.RowSet{
			{"userId": int64(9), "nickname": "rival"},
		})}
		handler := NewUserHandler(runner, testSyncSecret, testLogger())

		recorder := doRequest(t, "GET", "/user/{userId}", handler.Get, "/user/9", nil, "")

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "rival", decodeBody(t, recorder)["nickname"])
	})

	t.Run("missing user is 404", func(t *testing.T) {
		runner := &mocks.MockRunner{QueryResult: result(store.RowSet{})}
		handler := NewUserHandler(runner, testSyncSecret, testLogger())

		recorder := doRequest(t, "GET", "/user/{userId}", handler.Get, "/user/9", nil, "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.JSONEq(t, `{"errors":["User not found"]}`, recorder.Body.String())
	})
}

func TestUserSync(t *testing.T) {
	t.Parallel()

	validBody := map[string]any{"userId": "auth0|newuser", "email": "new@example.com"}

	t.Run("valid secret", func(t *testing.T) {
		runner := &mocks.MockRunner{ExecSuccess: true}
		handler := NewUserHandler(runner, testSyncSecret, testLogger())

		recorder := doRequest(t, "POST", "/user/sync", handler.Sync,
			"/user/sync?code="+testSyncSecret, validBody, "")

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"success":true}`, recorder.Body.String())

		require.Len(t, runner.ExecCalls, 1)
		call := runner.ExecCalls[0]
		assert.Equal(t, "spUser_Sync", call.Proc)
		assert.Equal(t, "auth0|newuser", runner.Param(call, "Auth0Id").Value)
		assert.Equal(t, "new@example.com", runner.Param(call, "Email").Value)
	})

	t.Run("secret mismatch is 403 and no call", func(t *testing.T) {
		runner := &mocks.MockRunner{ExecSuccess: true}
		handler := NewUserHandler(runner, testSyncSecret, testLogger())

		recorder := doRequest(t, "POST", "/user/sync", handler.Sync,
			"/user/sync?code=wrong", validBody, "")

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.JSONEq(t, `{"errors":["Unauthorized"]}`, recorder.Body.String())
		assert.Zero(t, runner.CallCount())
	})

	t.Run("missing code is 400", func(t *testing.T) {
		runner := &mocks.MockRunner{ExecSuccess: true}
		handler := NewUserHandler(runner, testSyncSecret, testLogger())

		recorder := doRequest(t, "POST", "/user/sync", handler.Sync, "/user/sync", validBody, "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Zero(t, runner.CallCount())
	})

	t.Run("missing email is 400", func(t *testing.T) {
		runner := &mocks.MockRunner{ExecSuccess: true}
		handler := NewUserHandler(runner, testSyncSecret, testLogger())

		body := map[string]any{"userId": "auth0|newuser"}
		recorder := doRequest(t, "POST", "/user/sync", handler.Sync,
			"/user/sync?code="+testSyncSecret, body, "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Zero(t, runner.CallCount())
	})
}
