package chat

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/vokaflow/faqbot/internal/faq"
)

const (
	WelcomeText  = "¡Hola! Soy el asistente de VokaFlow. Pregúntame lo que quieras o elige una de las preguntas sugeridas."
	FallbackText = "Lo siento, no tengo información sobre eso. Prueba con otras palabras o echa un vistazo a las categorías disponibles."
)

// Bot turns user utterances into replies by searching the FAQ store, and
// persists the conversation history as one JSON blob under the session
// key.
type Bot struct {
	faqs       *faq.Service
	kv         KV
	events     Events // optional, nil disables publishing
	sessionKey string
}

func NewBot(faqs *faq.Service, kv KV, events Events, sessionKey string) *Bot {
	return &Bot{faqs: faqs, kv: kv, events: events, sessionKey: sessionKey}
}

// History loads the persisted message list. An absent key or a blob that
// no longer parses both degrade to an empty history; only a failing read
// of the store itself is an error.
func (b *Bot) History(ctx context.Context) ([]Message, error) {
	raw, found, err := b.kv.Get(ctx, b.sessionKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var msgs []Message
	if err := json.Unmarshal([]byte(raw), &msgs); err != nil {
		log.Printf("chat: discarding malformed history key=%s err=%v", b.sessionKey, err)
		return nil, nil
	}
	return msgs, nil
}

// SaveHistory overwrites the whole persisted list. Callers pass the
// complete desired state every time; there is no append.
func (b *Bot) SaveHistory(ctx context.Context, msgs []Message) error {
	raw, err := json.Marshal(msgs)
	if err != nil {
		return err
	}
	return b.kv.Set(ctx, b.sessionKey, string(raw))
}

func (b *Bot) ClearHistory(ctx context.Context) error {
	return b.kv.Delete(ctx, b.sessionKey)
}

// ProcessUserMessage resolves one utterance into a bot reply. Outcomes:
// empty input gets the fixed welcome, a search hit gets the first match's
// answer, and everything else gets the fixed fallback. Search is not
// relevance-ranked, so "first match" means earliest-inserted match. Store
// faults degrade to the fallback as well: chat never surfaces a raw error
// to the user, it is logged here instead.
func (b *Bot) ProcessUserMessage(ctx context.Context, text string) (Message, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return NewBotMessage(WelcomeText)
	}

	replyText := FallbackText
	matched := false
	results, err := b.faqs.Search(ctx, trimmed)
	if err != nil {
		log.Printf("chat: faq search failed query=%q err=%v", trimmed, err)
	} else if len(results) > 0 {
		replyText = results[0].Answer
		matched = true
	}

	reply, err := NewBotMessage(replyText)
	if err != nil {
		return Message{}, err
	}

	if b.events != nil {
		ev := ReplyEvent{
			SessionKey: b.sessionKey,
			MessageID:  reply.ID,
			Question:   trimmed,
			Answer:     replyText,
			Matched:    matched,
			Timestamp:  reply.Timestamp,
		}
		if err := b.events.PublishReplyResolved(ctx, ev); err != nil {
			log.Printf("chat: publish reply event failed err=%v", err)
		}
	}
	return reply, nil
}

// SuggestedQuestions returns the question text of every popular entry.
func (b *Bot) SuggestedQuestions(ctx context.Context) ([]string, error) {
	popular, err := b.faqs.GetPopular(ctx)
	if err != nil {
		return nil, err
	}
	questions := make([]string, 0, len(popular))
	for _, e := range popular {
		questions = append(questions, e.Question)
	}
	return questions, nil
}

// Categories returns the distinct category labels in first-occurrence
// order.
func (b *Bot) Categories(ctx context.Context) ([]string, error) {
	entries, err := b.faqs.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(entries))
	var categories []string
	for _, e := range entries {
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		categories = append(categories, e.Category)
	}
	return categories, nil
}
