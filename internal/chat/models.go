package chat

import (
	"time"

	"github.com/vokaflow/faqbot/internal/common"
)

type MessageType string

const (
	MessageUser MessageType = "user"
	MessageBot  MessageType = "bot"
)

// Message is one entry of a conversation. Insertion order of the history
// list is the display order; Timestamp exists for display only and is
// never used to sort.
type Message struct {
	ID        string      `json:"id"`
	Text      string      `json:"text"`
	Type      MessageType `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	IsTyping  bool        `json:"is_typing,omitempty"`
}

// NewUserMessage builds a user message with a fresh ULID. Ids come from a
// monotonic entropy source, so back-to-back messages created within the
// same millisecond still get distinct ids.
func NewUserMessage(text string) (Message, error) {
	id, err := common.NewULID()
	if err != nil {
		return Message{}, err
	}
	return Message{
		ID:        id,
		Text:      text,
		Type:      MessageUser,
		Timestamp: time.Now(),
	}, nil
}

func NewBotMessage(text string) (Message, error) {
	id, err := common.NewULID()
	if err != nil {
		return Message{}, err
	}
	return Message{
		ID:        id,
		Text:      text,
		Type:      MessageBot,
		Timestamp: time.Now(),
	}, nil
}

// NewTypingPlaceholder builds the transient bot message shown while a
// reply is being resolved. Text stays empty until the placeholder is
// resolved in place.
func NewTypingPlaceholder() (Message, error) {
	m, err := NewBotMessage("")
	if err != nil {
		return Message{}, err
	}
	m.IsTyping = true
	return m, nil
}
