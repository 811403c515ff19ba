package notification

import "github.com/alexmorbo/build-hipchat-notifier/domain/build"

// Message is a composed notification ready for delivery.
type Message struct {
	Room   string
	Color  build.Color
	Body   string
	Notify bool
}
