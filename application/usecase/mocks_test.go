package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/alexmorbo/build-hipchat-notifier/application/port"
	"github.com/alexmorbo/build-hipchat-notifier/domain/build"
	"github.com/alexmorbo/build-hipchat-notifier/domain/notification"
)

type mockComposer struct {
	composition port.Composition
	called      bool
	cancel      context.CancelFunc
}

func (m *mockComposer) Compose(ctx context.Context, cfg notification.NotifierConfig, bctx *build.Context) port.Composition {
	m.called = true
	if m.cancel != nil {
		m.cancel()
	}
	return m.composition
}

type mockChatClient struct {
	ok       bool
	called   bool
	server   string
	token    string
	lastMsg  notification.Message
	cancel   context.CancelFunc
	callsNum int
}

func (m *mockChatClient) Send(ctx context.Context, server, token string, msg notification.Message) bool {
	m.called = true
	m.callsNum++
	m.server = server
	m.token = token
	m.lastMsg = msg
	if m.cancel != nil {
		m.cancel()
	}
	return m.ok
}

type mockJobProvider struct {
	configs map[string]notification.NotifierConfig
}

func (m *mockJobProvider) NotifierConfig(jobName string) (notification.NotifierConfig, error) {
	cfg, ok := m.configs[jobName]
	if !ok {
		return notification.NotifierConfig{}, port.ErrJobNotConfigured
	}
	return cfg, nil
}

type mockSettingsRepository struct {
	cfg       *notification.GlobalConfig
	loadErr   error
	saveErr   error
	saveCalls int
}

func (m *mockSettingsRepository) Load(ctx context.Context) (notification.GlobalConfig, error) {
	if m.loadErr != nil {
		return notification.GlobalConfig{}, m.loadErr
	}
	if m.cfg == nil {
		return notification.GlobalConfig{}, notification.ErrNotFound
	}
	return *m.cfg, nil
}

func (m *mockSettingsRepository) Save(ctx context.Context, cfg notification.GlobalConfig) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.cfg = &cfg
	return nil
}

type mockDeliveryRepository struct {
	saved   []*notification.Delivery
	saveErr error
}

func (m *mockDeliveryRepository) Save(ctx context.Context, d *notification.Delivery) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, d)
	return nil
}

func (m *mockDeliveryRepository) Find(ctx context.Context, jobName string, number int) (*notification.Delivery, error) {
	for _, d := range m.saved {
		if d.JobName() == jobName && d.Number() == number {
			return d, nil
		}
	}
	return nil, notification.ErrNotFound
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
