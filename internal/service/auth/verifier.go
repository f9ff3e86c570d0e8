// Package auth verifies bearer tokens issued by the external identity
// provider. The gateway never issues tokens itself; it only consumes the
// verified subject claim, which becomes the request's user identifier.
package auth

import (
	"context"
	"errors"
)

var (
	// ErrInvalidToken is returned when a token fails signature, audience,
	// issuer, or structural validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token is structurally valid but no
	// longer (or not yet) within its validity window.
	ErrExpiredToken = errors.New("token expired")

	// ErrMissingSubject is returned when a verified token carries no subject
	// claim, leaving no user identity to attach.
	ErrMissingSubject = errors.New("token has no subject")
)

// TokenVerifier validates a raw bearer token and returns its subject claim.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (subject string, err error)
}
