package port

import (
	"context"

	"github.com/alexmorbo/build-hipchat-notifier/domain/notification"
)

// ChatClient delivers one composed message. It reports success as a boolean:
// delivery problems are outcomes, not errors.
type ChatClient interface {
	Send(ctx context.Context, server, token string, msg notification.Message) bool
}
