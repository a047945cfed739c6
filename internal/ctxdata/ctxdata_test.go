package ctxdata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceID(t *testing.T) {
	_, ok := GetTraceID(context.Background())
	assert.False(t, ok)

	ctx := WithTraceID(context.Background(), "trace-1")
	traceID, ok := GetTraceID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "trace-1", traceID)
}

func TestPrincipal(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		_, ok := GetUserID(context.Background())
		assert.False(t, ok)
		_, ok = GetUserRole(context.Background())
		assert.False(t, ok)
	})

	t.Run("Present", func(t *testing.T) {
		ctx := WithPrincipal(context.Background(), Principal{UserID: "42", Role: "staff"})

		userID, ok := GetUserID(ctx)
		assert.True(t, ok)
		assert.Equal(t, "42", userID)

		role, ok := GetUserRole(ctx)
		assert.True(t, ok)
		assert.Equal(t, "staff", role)
	})

	t.Run("EmptyRole", func(t *testing.T) {
		ctx := WithPrincipal(context.Background(), Principal{UserID: "42"})
		_, ok := GetUserRole(ctx)
		assert.False(t, ok)
	})
}
