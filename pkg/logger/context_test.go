package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRequestID(t *testing.T) {
	t.Run("returns request ID when present", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "req-xyz-789")
		assert.Equal(t, "req-xyz-789", GetRequestID(ctx))
	})

	t.Run("returns empty string when not present", func(t *testing.T) {
		assert.Empty(t, GetRequestID(context.Background()))
	})

	t.Run("returns empty string when value is wrong type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), requestIDKey, 12345)
		assert.Empty(t, GetRequestID(ctx))
	})

	t.Run("latest value wins", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "first-request")
		ctx = WithRequestID(ctx, "second-request")
		assert.Equal(t, "second-request", GetRequestID(ctx))
	})
}

func TestFromContext(t *testing.T) {
	t.Run("attaches request ID", func(t *testing.T) {
		var buf bytes.Buffer
		base := slog.New(slog.NewJSONHandler(&buf, nil))

		ctx := WithRequestID(context.Background(), "req-abc-123")
		FromContext(ctx, base).Info("build notified")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "req-abc-123", record["request_id"])
	})

	t.Run("returns same logger without request ID", func(t *testing.T) {
		base := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
		assert.Same(t, base, FromContext(context.Background(), base))
	})
}
