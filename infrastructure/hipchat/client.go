package hipchat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/VictoriaMetrics/metrics"

	"github.com/alexmorbo/build-hipchat-notifier/domain/notification"
	"github.com/alexmorbo/build-hipchat-notifier/pkg/logger"
)

const (
	DefaultServer  = "api.hipchat.com"
	defaultTimeout = 30 * time.Second
	messageFormat  = "text"
)

var (
	hcSendOK  = metrics.NewCounter(`hipchat_api_calls_total{operation="send_room_notification",status="ok"}`)
	hcSendErr = metrics.NewCounter(`hipchat_api_calls_total{operation="send_room_notification",status="error"}`)
	hcSendDur = metrics.NewHistogram(`hipchat_api_duration_seconds{operation="send_room_notification"}`)
)

var errEmptyServer = errors.New("empty server")

type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return NewClientWithHTTP(&http.Client{
		Timeout: defaultTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        20,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}, logger)
}

func NewClientWithHTTP(httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

type roomNotificationRequest struct {
	Color         string `json:"color"`
	Message       string `json:"message"`
	Notify        bool   `json:"notify"`
	MessageFormat string `json:"message_format"`
}

// Send posts msg to its room. It makes exactly one attempt and reports
// whether the service acknowledged the notification.
func (c *Client) Send(ctx context.Context, server, token string, msg notification.Message) bool {
	start := time.Now()

	reqURL, err := notificationURL(server, msg.Room)
	if err != nil {
		c.logger.Error("HipChat notification URL invalid",
			slog.String("server", server),
			slog.String("room", msg.Room),
			slog.String("error", err.Error()),
		)
		hcSendErr.Inc()
		return false
	}

	body := roomNotificationRequest{
		Color:         string(msg.Color),
		Message:       msg.Body,
		Notify:        msg.Notify,
		MessageFormat: messageFormat,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		c.logger.Error("HipChat marshal notification failed", slog.String("error", err.Error()))
		hcSendErr.Inc()
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(jsonBody))
	if err != nil {
		c.logger.Error("HipChat create request failed", slog.String("error", err.Error()))
		hcSendErr.Inc()
		return false
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		duration := time.Since(start).Milliseconds()
		c.logger.Error("HipChat SendRoomNotification failed",
			logger.ExternalFieldsWithError("hipchat", reqURL, "POST", 0, duration, err.Error()),
		)
		hcSendErr.Inc()
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	duration := time.Since(start).Milliseconds()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("HipChat SendRoomNotification non-2xx",
			logger.ExternalFieldsWithError("hipchat", reqURL, "POST", resp.StatusCode, duration, string(respBody)),
		)
		hcSendErr.Inc()
		return false
	}

	c.logger.Debug("HipChat SendRoomNotification completed",
		logger.ExternalFields("hipchat", reqURL, "POST", resp.StatusCode, duration),
	)
	hcSendOK.Inc()
	hcSendDur.Update(float64(duration) / 1000)

	return true
}

// notificationURL accepts a bare host ("api.hipchat.com") or a base URL with
// scheme and optional path prefix.
func notificationURL(server, room string) (string, error) {
	server = strings.TrimSpace(server)
	if server == "" {
		server = DefaultServer
	}
	if !strings.Contains(server, "://") {
		server = "https://" + server
	}

	base, err := url.Parse(server)
	if err != nil {
		return "", fmt.Errorf("parse server: %w", err)
	}
	if base.Host == "" {
		return "", fmt.Errorf("parse server %q: %w", server, errEmptyServer)
	}

	return strings.TrimRight(base.String(), "/") + "/v2/room/" + url.PathEscape(room) + "/notification", nil
}
