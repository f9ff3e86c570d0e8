// Package api provides the HTTP handlers for the gateway.
//
// Handlers own no business logic. Each one validates the request, builds a
// procedure call descriptor, invokes the stored procedure through the shared
// runner, and shapes the returned row-sets into the response body. Any
// failure short-circuits to the error normalizer, which maps the closed
// signal set to uniform {"errors":[...]} bodies.
package api
