package hipchat

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexmorbo/build-hipchat-notifier/domain/build"
	"github.com/alexmorbo/build-hipchat-notifier/domain/notification"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestSendSuccess(t *testing.T) {
	var captured roomNotificationRequest
	var capturedToken string
	var capturedPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.EscapedPath()
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		authHeader := r.Header.Get("Authorization")
		require.Contains(t, authHeader, "Bearer ")
		capturedToken = authHeader[len("Bearer "):]

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(testLogger())

	ok := client.Send(context.Background(), server.URL, "room-token", notification.Message{
		Room:   "ops room",
		Color:  build.ColorGreen,
		Body:   "demo #42 (SUCCESS) http://x/42",
		Notify: true,
	})

	require.True(t, ok)
	assert.Equal(t, "/v2/room/ops%20room/notification", capturedPath)
	assert.Equal(t, "room-token", capturedToken)
	assert.Equal(t, "green", captured.Color)
	assert.Equal(t, "demo #42 (SUCCESS) http://x/42", captured.Message)
	assert.True(t, captured.Notify)
	assert.Equal(t, "text", captured.MessageFormat)
}

func TestSendNotifyFalseIsSerialized(t *testing.T) {
	var raw map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	ok := NewClient(testLogger()).Send(context.Background(), server.URL, "t", notification.Message{
		Room:  "ops",
		Color: build.ColorRed,
		Body:  "",
	})

	require.True(t, ok)
	assert.Equal(t, false, raw["notify"])
	assert.Equal(t, "", raw["message"])
	assert.Equal(t, "red", raw["color"])
}

func TestSendAcceptsOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ok := NewClient(testLogger()).Send(context.Background(), server.URL, "t", notification.Message{Room: "ops"})
	assert.True(t, ok)
}

func TestSendNonSuccessStatus(t *testing.T) {
	statuses := []int{
		http.StatusCreated,
		http.StatusBadRequest,
		http.StatusUnauthorized,
		http.StatusNotFound,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
	}

	for _, status := range statuses {
		t.Run(http.StatusText(status), func(t *testing.T) {
			calls := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(status)
				_, _ = w.Write([]byte(`{"error": {"message": "nope"}}`))
			}))
			defer server.Close()

			ok := NewClient(testLogger()).Send(context.Background(), server.URL, "t", notification.Message{Room: "ops"})
			assert.False(t, ok)
			assert.Equal(t, 1, calls, "no retries")
		})
	}
}

func TestSendNetworkError(t *testing.T) {
	ok := NewClient(testLogger()).Send(context.Background(), "http://localhost:1", "t", notification.Message{Room: "ops"})
	assert.False(t, ok)
}

func TestSendInvalidServer(t *testing.T) {
	ok := NewClient(testLogger()).Send(context.Background(), "http://", "t", notification.Message{Room: "ops"})
	assert.False(t, ok)
}

func TestSendCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok := NewClient(testLogger()).Send(ctx, server.URL, "t", notification.Message{Room: "ops"})
	assert.False(t, ok)
}

func TestSendTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClientWithHTTP(&http.Client{Timeout: 20 * time.Millisecond}, testLogger())

	ok := client.Send(context.Background(), server.URL, "t", notification.Message{Room: "ops"})
	assert.False(t, ok)
}

func TestNotificationURL(t *testing.T) {
	tests := []struct {
		name     string
		server   string
		room     string
		expected string
		wantErr  bool
	}{
		{name: "bare host", server: "api.hipchat.com", room: "ops", expected: "https://api.hipchat.com/v2/room/ops/notification"},
		{name: "empty server uses default", server: "", room: "ops", expected: "https://api.hipchat.com/v2/room/ops/notification"},
		{name: "explicit scheme", server: "http://chat.internal:8080", room: "123", expected: "http://chat.internal:8080/v2/room/123/notification"},
		{name: "trailing slash", server: "https://chat.internal/", room: "ops", expected: "https://chat.internal/v2/room/ops/notification"},
		{name: "path prefix", server: "https://proxy.internal/hipchat", room: "ops", expected: "https://proxy.internal/hipchat/v2/room/ops/notification"},
		{name: "room escaped", server: "chat.internal", room: "build/alerts", expected: "https://chat.internal/v2/room/build%2Falerts/notification"},
		{name: "missing host", server: "https://", room: "ops", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := notificationURL(tt.server, tt.room)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNewClient(t *testing.T) {
	client := NewClient(testLogger())

	require.NotNil(t, client)
	require.NotNil(t, client.httpClient)
	assert.Equal(t, defaultTimeout, client.httpClient.Timeout)
	assert.NotNil(t, client.logger)
}
