package store

import "context"

// ParamType is the declared SQL type of a procedure parameter. The declared
// types must match the procedure signatures exactly; that contract is held by
// convention with the database schema, not enforced here.
type ParamType string

const (
	TypeText    ParamType = "text"
	TypeInt     ParamType = "integer"
	TypeBigInt  ParamType = "bigint"
	TypeBoolean ParamType = "boolean"
)

// Param is one entry of a procedure call descriptor: the parameter name, its
// declared SQL type, and the value to bind. A nil Value binds SQL NULL, which
// is how optional filters are passed through.
type Param struct {
	Name  string
	Type  ParamType
	Value any
}

// Text builds a text parameter.
func Text(name string, value any) Param { return Param{Name: name, Type: TypeText, Value: value} }

// Int builds an integer parameter.
func Int(name string, value any) Param { return Param{Name: name, Type: TypeInt, Value: value} }

// BigInt builds a bigint parameter.
func BigInt(name string, value any) Param { return Param{Name: name, Type: TypeBigInt, Value: value} }

// Row is a single result row keyed by column name.
type Row map[string]any

// RowSet is one ordered batch of rows returned by a procedure call.
type RowSet []Row

// Result carries the ordered row-sets of a single procedure invocation. The
// meaning of each position is an endpoint-level convention (for list
// endpoints, set 0 is pagination metadata and set 1 the data rows).
type Result struct {
	Sets []RowSet
}

// First returns the first row of the first row-set, or nil when the result
// carries no rows at all.
func (r *Result) First() Row {
	if r == nil || len(r.Sets) == 0 || len(r.Sets[0]) == 0 {
		return nil
	}
	return r.Sets[0][0]
}

// Set returns the row-set at position i, or nil when the procedure returned
// fewer sets. Callers substitute an empty sequence for a nil set.
func (r *Result) Set(i int) RowSet {
	if r == nil || i >= len(r.Sets) {
		return nil
	}
	return r.Sets[i]
}

// ProcedureRunner invokes named stored procedures through the shared
// connection pool. Query is used by read endpoints and returns every row-set
// the procedure produced, in order. Exec is used by write endpoints and
// returns the procedure's scalar status, where true means the write took
// effect. Neither method retries: a failed invocation surfaces as an error
// and the caller reports it as an opaque database failure.
type ProcedureRunner interface {
	Query(ctx context.Context, proc string, params ...Param) (*Result, error)
	Exec(ctx context.Context, proc string, params ...Param) (bool, error)
}
