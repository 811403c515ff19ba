package config

import (
	"context"

	"github.com/alexmorbo/build-hipchat-notifier/domain/notification"
)

// StaticSettings serves fixed global defaults, for hosts without a settings
// store.
type StaticSettings notification.GlobalConfig

func (s StaticSettings) Load(_ context.Context) (notification.GlobalConfig, error) {
	return notification.GlobalConfig(s), nil
}
