package notification

// State is the terminal state of one notification invocation.
type State string

const (
	StateSkippedInvalidSettings State = "skipped_invalid_settings"
	StateSkippedByPolicy        State = "skipped_by_policy"
	StateSent                   State = "sent"
	StateFailed                 State = "failed"
)

func (s State) IsSkipped() bool {
	return s == StateSkippedInvalidSettings || s == StateSkippedByPolicy
}

func (s State) IsSent() bool {
	return s == StateSent || s == StateFailed
}
