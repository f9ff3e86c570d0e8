package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, "", GetTraceID(ctx), "no trace id before SetTraceID")

	ctx = SetTraceID(ctx)
	first := GetTraceID(ctx)
	assert.NotEmpty(t, first)

	// A second call produces a fresh id.
	second := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, first, second)
}

func TestUserID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, ok := GetUserID(ctx)
	assert.False(t, ok)

	ctx = SetUserID(ctx, "auth0|abc")
	subject, ok := GetUserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "auth0|abc", subject)

	// An empty subject counts as no identity.
	_, ok = GetUserID(SetUserID(context.Background(), ""))
	assert.False(t, ok)
}
