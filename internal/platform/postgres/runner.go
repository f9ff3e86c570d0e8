// Package postgres implements the store.ProcedureRunner against a PostgreSQL
// database through database/sql with the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/deckforge/deckforge-api/internal/store"
)

// Runner invokes stored procedures on the shared connection pool. It holds no
// per-request state; one value is shared by every in-flight request and the
// pool serializes access to physical connections internally.
type Runner struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewRunner creates a Runner on the given database handle.
// If logger is nil, the default logger is used.
func NewRunner(db store.DBTX, logger *slog.Logger) *Runner {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		db:     db,
		logger: logger.With(slog.String("component", "proc_runner")),
	}
}

var _ store.ProcedureRunner = (*Runner)(nil)

// buildCall renders the invocation for a set-returning procedure. Parameters
// are bound positionally with an explicit cast to their declared SQL type so
// the procedure signature is matched exactly even when every bind value
// arrives as text.
func buildCall(proc string, params []store.Param) (string, []any) {
	placeholders := make([]string, len(params))
	args := make([]any, len(params))
	for i, p := range params {
		placeholders[i] = fmt.Sprintf("$%d::%s", i+1, p.Type)
		args[i] = p.Value
	}
	return fmt.Sprintf("SELECT * FROM %q(%s)", proc, strings.Join(placeholders, ", ")), args
}

// Query implements store.ProcedureRunner.Query. It executes the named
// procedure and collects every row-set it returns, in order.
func (r *Runner) Query(ctx context.Context, proc string, params ...store.Param) (*store.Result, error) {
	query, args := buildCall(proc, params)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("procedure %s: %w", proc, err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			r.logger.Warn("failed to close rows", slog.String("proc", proc), slog.String("error", cerr.Error()))
		}
	}()

	result := &store.Result{}
	for {
		set, err := scanSet(rows)
		if err != nil {
			return nil, fmt.Errorf("procedure %s: %w", proc, err)
		}
		result.Sets = append(result.Sets, set)
		if !rows.NextResultSet() {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("procedure %s: %w", proc, err)
	}
	return result, nil
}

// Exec implements store.ProcedureRunner.Exec. Write procedures return a
// scalar status; nonzero means the write took effect.
func (r *Runner) Exec(ctx context.Context, proc string, params ...store.Param) (bool, error) {
	placeholders := make([]string, len(params))
	args := make([]any, len(params))
	for i, p := range params {
		placeholders[i] = fmt.Sprintf("$%d::%s", i+1, p.Type)
		args[i] = p.Value
	}
	query := fmt.Sprintf("SELECT %q(%s)", proc, strings.Join(placeholders, ", "))

	var status sql.NullInt64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&status); err != nil {
		return false, fmt.Errorf("procedure %s: %w", proc, err)
	}
	return status.Valid && status.Int64 != 0, nil
}

// scanSet drains the current result set into a store.RowSet.
func scanSet(rows *sql.Rows) (store.RowSet, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var set store.RowSet
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(store.Row, len(cols))
		for i, col := range cols {
			row[col] = normalize(values[i])
		}
		set = append(set, row)
	}
	return set, rows.Err()
}

// normalize converts driver byte slices to strings so row values marshal as
// JSON text rather than base64.
func normalize(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
