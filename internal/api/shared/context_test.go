package shared

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGetTraceID(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, GetTraceID(ctx), "Expected empty trace ID in original context")

	ctxWithTrace := SetTraceID(ctx)

	traceID := GetTraceID(ctxWithTrace)
	require.NotEmpty(t, traceID, "Expected non-empty trace ID after setting")
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err, "Expected trace ID to be a UUID")

	assert.Empty(t, GetTraceID(ctx), "Expected original context to remain unchanged")
}

func TestSetTraceIDIsUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := GetTraceID(SetTraceID(context.Background()))
		_, dup := seen[id]
		require.False(t, dup, "duplicate trace ID %s", id)
		seen[id] = struct{}{}
	}
}

func TestGetTraceIDWithInvalidContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDKey, 123) // Not a string

	assert.Empty(t, GetTraceID(ctx), "Expected empty trace ID when context has invalid type")
}

func TestParseTraceID(t *testing.T) {
	assert.Equal(t, "0b7c3f5e-2d7a-4e8b-9c1d-6f2a4b3c5d7e", ParseTraceID("0B7C3F5E-2D7A-4E8B-9C1D-6F2A4B3C5D7E"))
	assert.Empty(t, ParseTraceID(""))
	assert.Empty(t, ParseTraceID("not-a-uuid"))
	assert.Empty(t, ParseTraceID("<script>"))
}
