package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckforge/deckforge-api/internal/mocks"
	"github.com/deckforge/deckforge-api/internal/store"
)

func TestTagEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("list", func(t *testing.T) {
		runner := &mocks.MockRunner{QueryResult: result(store.RowSet{{"tagId": int64(3), "name": "Burn"}})}
		handler := NewTagHandler(runner, testLogger())

		recorder := doRequest(t, "GET", "/tag/list", handler.List, "/tag/list", nil, "")

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "spTag_List", runner.QueryCalls[0].Proc)
	})

	t.Run("get missing", func(t *testing.T) {
		runner := &mocks.MockRunner{QueryResult: result(store.RowSet{})}
		handler := NewTagHandler(runner, testLogger())

		recorder := doRequest(t, "GET", "/tag/{tagId}", handler.Get, "/tag/404", nil, "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.JSONEq(t, `{"errors":["Tag not found"]}`, recorder.Body.String())
	})
}
