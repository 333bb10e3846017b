package chat

import (
	"context"
	"time"
)

// KV is the key-value collaborator the conversation history blob is
// persisted through.
type KV interface {
	// Get returns the stored value and whether the key was present. A
	// missing key is (_, false, nil), not an error.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// ReplyEvent is emitted after a user message has been resolved into a bot
// reply.
type ReplyEvent struct {
	SessionKey string    `json:"session_key"`
	MessageID  string    `json:"message_id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Matched    bool      `json:"matched"`
	Timestamp  time.Time `json:"timestamp"`
}

// Events is the optional sink for reply events. Publishing is fire and
// forget: failures are logged by the caller, never surfaced to the user.
type Events interface {
	PublishReplyResolved(ctx context.Context, ev ReplyEvent) error
}
