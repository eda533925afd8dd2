package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		ctx := SetTraceID(context.Background())
		traceID := GetTraceID(ctx)
		require.NotEmpty(t, traceID)
		assert.Len(t, traceID, 2*TraceIDLength)
	})

	t.Run("missing trace ID yields empty string", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", GetTraceID(context.Background()))
	})

	t.Run("IDs are unique per request", func(t *testing.T) {
		t.Parallel()

		first := GetTraceID(SetTraceID(context.Background()))
		second := GetTraceID(SetTraceID(context.Background()))
		assert.NotEqual(t, first, second)
	})
}
