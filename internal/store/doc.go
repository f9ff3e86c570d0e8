// Package store defines the database access contracts for the gateway.
//
// All domain logic lives in stored procedures; the gateway only constructs
// procedure call descriptors (a target procedure name plus ordered, typed
// parameters) and consumes the row-sets that come back. The ProcedureRunner
// interface is the seam between handlers and the database so tests can
// substitute a fake without a live pool.
package store
