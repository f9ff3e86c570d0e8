package mocks

import (
	"context"

	"github.com/deckforge/deckforge-api/internal/service/auth"
)

// MockVerifier implements auth.TokenVerifier for testing. It returns Subject
// for any token unless Err is set.
type MockVerifier struct {
	Subject string
	Err     error
}

var _ auth.TokenVerifier = (*MockVerifier)(nil)

// Verify implements auth.TokenVerifier.
func (m *MockVerifier) Verify(ctx context.Context, token string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Subject, nil
}
