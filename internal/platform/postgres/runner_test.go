package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckforge/deckforge-api/internal/store"
)

func newRunner(t *testing.T) (*Runner, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRunner(db, slog.New(slog.NewTextHandler(io.Discard, nil))), mock
}

func TestRunnerQuery(t *testing.T) {
	t.Run("binds params positionally with declared types", func(t *testing.T) {
		runner, mock := newRunner(t)

		rows := sqlmock.NewRows([]string{"cardId", "name"}).AddRow(int64(7), "Ember Sprite")
		mock.ExpectQuery(`SELECT * FROM "spCard_Get"($1::text, $2::bigint)`).
			WithArgs(nil, "7").
			WillReturnRows(rows)

		result, err := runner.Query(context.Background(), "spCard_Get",
			store.Text("Auth0Id", nil),
			store.BigInt("CardId", "7"),
		)
		require.NoError(t, err)
		require.Len(t, result.Sets, 1)
		require.Len(t, result.Sets[0], 1)
		assert.Equal(t, int64(7), result.Sets[0][0]["cardId"])
		assert.Equal(t, "Ember Sprite", result.Sets[0][0]["name"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("collects multiple row-sets in order", func(t *testing.T) {
		runner, mock := newRunner(t)

		meta := sqlmock.NewRows([]string{"pages", "decks"}).AddRow(int64(3), int64(51))
		data := sqlmock.NewRows([]string{"deckId"}).AddRow(int64(1)).AddRow(int64(2))
		mock.ExpectQuery(`SELECT * FROM "spDeck_List"($1::text, $2::integer)`).
			WithArgs(nil, "25").
			WillReturnRows(meta, data)

		result, err := runner.Query(context.Background(), "spDeck_List",
			store.Text("Auth0Id", nil),
			store.Int("Limit", "25"),
		)
		require.NoError(t, err)
		require.Len(t, result.Sets, 2)
		assert.Equal(t, int64(3), result.Sets[0][0]["pages"])
		require.Len(t, result.Sets[1], 2)
		assert.Equal(t, int64(2), result.Sets[1][1]["deckId"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("converts byte slices to strings", func(t *testing.T) {
		runner, mock := newRunner(t)

		rows := sqlmock.NewRows([]string{"name"}).AddRow([]byte("Tidecaller"))
		mock.ExpectQuery(`SELECT * FROM "spCard_Get"($1::text)`).
			WithArgs(nil).
			WillReturnRows(rows)

		result, err := runner.Query(context.Background(), "spCard_Get", store.Text("Auth0Id", nil))
		require.NoError(t, err)
		assert.Equal(t, "Tidecaller", result.Sets[0][0]["name"])
	})

	t.Run("empty row-set yields nil first row", func(t *testing.T) {
		runner, mock := newRunner(t)

		mock.ExpectQuery(`SELECT * FROM "spCard_Get"($1::text)`).
			WithArgs(nil).
			WillReturnRows(sqlmock.NewRows([]string{"cardId"}))

		result, err := runner.Query(context.Background(), "spCard_Get", store.Text("Auth0Id", nil))
		require.NoError(t, err)
		assert.Nil(t, result.First())
	})

	t.Run("wraps driver errors with the procedure name", func(t *testing.T) {
		runner, mock := newRunner(t)

		mock.ExpectQuery(`SELECT * FROM "spCard_List"()`).
			WillReturnError(errors.New("connection reset"))

		_, err := runner.Query(context.Background(), "spCard_List")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "spCard_List")
	})
}

func TestRunnerExec(t *testing.T) {
	tests := []struct {
		name   string
		status any
		want   bool
	}{
		{name: "nonzero status means success", status: int64(42), want: true},
		{name: "zero status means failure", status: int64(0), want: false},
		{name: "null status means failure", status: nil, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runner, mock := newRunner(t)

			mock.ExpectQuery(`SELECT "spDeck_Delete"($1::text, $2::bigint)`).
				WithArgs("auth0|u1", "9").
				WillReturnRows(sqlmock.NewRows([]string{"spDeck_Delete"}).AddRow(tc.status))

			success, err := runner.Exec(context.Background(), "spDeck_Delete",
				store.Text("Auth0Id", "auth0|u1"),
				store.BigInt("DeckId", "9"),
			)
			require.NoError(t, err)
			assert.Equal(t, tc.want, success)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("wraps driver errors with the procedure name", func(t *testing.T) {
		runner, mock := newRunner(t)

		mock.ExpectQuery(`SELECT "spDeck_Delete"($1::text)`).
			WillReturnError(errors.New("deadlock detected"))

		_, err := runner.Exec(context.Background(), "spDeck_Delete", store.Text("Auth0Id", "auth0|u1"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "spDeck_Delete")
	})
}

func TestBuildCall(t *testing.T) {
	query, args := buildCall("spCard_List", []store.Param{
		store.Text("Auth0Id", nil),
		store.BigInt("Cost", "3"),
		store.Text("RarityName", "Epic"),
	})
	assert.Equal(t, `SELECT * FROM "spCard_List"($1::text, $2::bigint, $3::text)`, query)
	assert.Equal(t, []any{nil, "3", "Epic"}, args)
}
