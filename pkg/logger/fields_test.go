package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupValues(t *testing.T, attr slog.Attr, key string) map[string]any {
	t.Helper()

	require.Equal(t, key, attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())

	values := make(map[string]any)
	for _, a := range attr.Value.Group() {
		switch a.Value.Kind() {
		case slog.KindString:
			values[a.Key] = a.Value.String()
		case slog.KindInt64:
			values[a.Key] = a.Value.Int64()
		default:
			values[a.Key] = a.Value.Any()
		}
	}
	return values
}

func TestHTTPFields(t *testing.T) {
	attr := HTTPFields("req-123", "POST", "/api/v1/builds/completed", "192.168.1.1", 200, 150, 100, 500)

	assert.Equal(t, map[string]any{
		"request_id":    "req-123",
		"method":        "POST",
		"path":          "/api/v1/builds/completed",
		"remote_ip":     "192.168.1.1",
		"status_code":   int64(200),
		"duration_ms":   int64(150),
		"request_size":  int64(100),
		"response_size": int64(500),
	}, groupValues(t, attr, "http"))
}

func TestExternalFields(t *testing.T) {
	attr := ExternalFields("hipchat", "https://api.hipchat.com/v2/room/ops/notification", "POST", 204, 250)

	assert.Equal(t, map[string]any{
		"service":     "hipchat",
		"url":         "https://api.hipchat.com/v2/room/ops/notification",
		"method":      "POST",
		"status_code": int64(204),
		"duration_ms": int64(250),
	}, groupValues(t, attr, "external"))
}

func TestExternalFieldsWithError(t *testing.T) {
	attr := ExternalFieldsWithError("hipchat", "https://api.hipchat.com/v2/room/ops/notification", "POST", 0, 100, "connection refused")

	values := groupValues(t, attr, "external")
	assert.Len(t, values, 6)
	assert.Equal(t, "connection refused", values["error"])
	assert.Equal(t, int64(0), values["status_code"])
}

func TestRedisFields(t *testing.T) {
	attr := RedisFields("get", "hcnotifier:settings", 5)

	assert.Equal(t, map[string]any{
		"operation":   "get",
		"key":         "hcnotifier:settings",
		"duration_ms": int64(5),
	}, groupValues(t, attr, "redis"))
}

func TestRedisFieldsWithError(t *testing.T) {
	attr := RedisFieldsWithError("set", "hcnotifier:delivery:demo:42", 10, "redis: connection pool exhausted")

	values := groupValues(t, attr, "redis")
	assert.Len(t, values, 4)
	assert.Equal(t, "redis: connection pool exhausted", values["error"])
}

func TestBuildFields(t *testing.T) {
	attr := BuildFields("demo", 42, "SUCCESS")

	assert.Equal(t, map[string]any{
		"job":    "demo",
		"number": int64(42),
		"result": "SUCCESS",
	}, groupValues(t, attr, "build"))
}

func TestApplicationFields(t *testing.T) {
	t.Run("with event only", func(t *testing.T) {
		values := groupValues(t, ApplicationFields("startup"), "application")
		assert.Equal(t, map[string]any{"event": "startup"}, values)
	})

	t.Run("with additional attributes", func(t *testing.T) {
		attr := ApplicationFields("notification_sent",
			slog.String("room", "ops"),
			slog.String("color", "green"),
			slog.Int("attempt", 1),
		)

		assert.Equal(t, map[string]any{
			"event":   "notification_sent",
			"room":    "ops",
			"color":   "green",
			"attempt": int64(1),
		}, groupValues(t, attr, "application"))
	})
}
