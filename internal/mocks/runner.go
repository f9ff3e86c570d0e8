// Package mocks provides hand-rolled test doubles with call tracking for the
// gateway's seams: the procedure runner and the token verifier.
package mocks

import (
	"context"
	"sync"

	"github.com/deckforge/deckforge-api/internal/store"
)

// MockRunner implements store.ProcedureRunner for testing.
type MockRunner struct {
	// Custom behavior functions. When nil, the default response values below
	// are used.
	QueryFn func(ctx context.Context, proc string, params ...store.Param) (*store.Result, error)
	ExecFn  func(ctx context.Context, proc string, params ...store.Param) (bool, error)

	// Default response values
	QueryResult *store.Result
	ExecSuccess bool
	Err         error

	// Call tracking for verification
	mu         sync.Mutex
	QueryCalls []Call
	ExecCalls  []Call
}

// Call records one runner invocation.
type Call struct {
	Proc   string
	Params []store.Param
}

var _ store.ProcedureRunner = (*MockRunner)(nil)

// Query implements store.ProcedureRunner.
func (m *MockRunner) Query(ctx context.Context, proc string, params ...store.Param) (*store.Result, error) {
	m.mu.Lock()
	m.QueryCalls = append(m.QueryCalls, Call{Proc: proc, Params: params})
	m.mu.Unlock()

	if m.QueryFn != nil {
		return m.QueryFn(ctx, proc, params...)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.QueryResult != nil {
		return m.QueryResult, nil
	}
	return &store.Result{}, nil
}

// Exec implements store.ProcedureRunner.
func (m *MockRunner) Exec(ctx context.Context, proc string, params ...store.Param) (bool, error) {
	m.mu.Lock()
	m.ExecCalls = append(m.ExecCalls, Call{Proc: proc, Params: params})
	m.mu.Unlock()

	if m.ExecFn != nil {
		return m.ExecFn(ctx, proc, params...)
	}
	if m.Err != nil {
		return false, m.Err
	}
	return m.ExecSuccess, nil
}

// CallCount returns the total number of procedure invocations recorded.
func (m *MockRunner) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.QueryCalls) + len(m.ExecCalls)
}

// Param returns the recorded parameter with the given name from the i-th
// query call, or a zero Param when absent.
func (m *MockRunner) Param(call Call, name string) store.Param {
	for _, p := range call.Params {
		if p.Name == name {
			return p
		}
	}
	return store.Param{}
}
