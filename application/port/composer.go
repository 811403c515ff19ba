package port

import (
	"context"

	"github.com/alexmorbo/build-hipchat-notifier/domain/build"
	"github.com/alexmorbo/build-hipchat-notifier/domain/notification"
)

const (
	CompositionTemplate = "template"
	CompositionFile     = "file"
	CompositionFallback = "fallback"
)

// Composition is a message body together with how it was produced. ReadErr
// is set when a file source could not be read and the template was used
// instead.
type Composition struct {
	Body    string
	Source  string
	ReadErr error
}

type MessageComposer interface {
	Compose(ctx context.Context, cfg notification.NotifierConfig, bctx *build.Context) Composition
}
