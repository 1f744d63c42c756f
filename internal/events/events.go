package events

import "time"

// MessageEvent is published after a successful message mutation so the
// notification fan-out can react. Events are best-effort: a publish failure
// never fails the originating request.
type MessageEvent struct {
	Type       string    `json:"type"` // "message.sent", "message.edited", "message.deleted"
	VacationID string    `json:"vacationId"`
	MessageID  string    `json:"messageId"`
	AuthorID   string    `json:"authorId"`
	Timestamp  time.Time `json:"timestamp"`
}

// Event types.
const (
	EventMessageSent    = "message.sent"
	EventMessageEdited  = "message.edited"
	EventMessageDeleted = "message.deleted"
)

// Publisher defines the interface for publishing message events.
type Publisher interface {
	PublishMessageEvent(event MessageEvent) error
	Close() error
}

// NoopPublisher is used when no message broker is configured.
type NoopPublisher struct{}

// PublishMessageEvent discards the event.
func (NoopPublisher) PublishMessageEvent(MessageEvent) error { return nil }

// Close is a no-op.
func (NoopPublisher) Close() error { return nil }
