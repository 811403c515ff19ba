package port

import (
	"context"
	"errors"

	"github.com/alexmorbo/build-hipchat-notifier/domain/notification"
)

var ErrJobNotConfigured = errors.New("job not configured")

// JobConfigProvider returns the notifier settings of a job, or
// ErrJobNotConfigured.
type JobConfigProvider interface {
	NotifierConfig(jobName string) (notification.NotifierConfig, error)
}

type SettingsProvider interface {
	Load(ctx context.Context) (notification.GlobalConfig, error)
}
