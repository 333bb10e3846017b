package conversation

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/vokaflow/faqbot/internal/chat"
)

// ErrReplyPending rejects a send while a previous reply is still being
// resolved. Accepting it would put a second typing placeholder in the
// list, and the list must never hold more than one.
var ErrReplyPending = errors.New("conversation: reply still pending")

// Bot is the chatbot collaborator the controller drives.
type Bot interface {
	History(ctx context.Context) ([]chat.Message, error)
	SaveHistory(ctx context.Context, msgs []chat.Message) error
	ClearHistory(ctx context.Context) error
	ProcessUserMessage(ctx context.Context, text string) (chat.Message, error)
	SuggestedQuestions(ctx context.Context) ([]string, error)
	Categories(ctx context.Context) ([]string, error)
}

// Seeder populates the FAQ store with default content when it is empty.
type Seeder interface {
	InitializeDefaults(ctx context.Context) error
}

// Controller holds one conversation session's state: the ordered message
// list, the loading flag and the cached suggestion/category lists. All
// mutations happen under the mutex and every mutation persists the full
// list, so the last write always reflects the final state.
type Controller struct {
	bot    Bot
	seeder Seeder

	mu         sync.Mutex
	messages   []chat.Message
	loading    bool
	suggested  []string
	categories []string
	selected   string
}

func NewController(bot Bot, seeder Seeder) *Controller {
	return &Controller{bot: bot, seeder: seeder}
}

// Mount restores the session: seeds default FAQs (idempotent, errors only
// logged), loads the persisted history or synthesizes the welcome message
// for a fresh session, and caches suggestions and categories.
func (c *Controller) Mount(ctx context.Context) error {
	if err := c.seeder.InitializeDefaults(ctx); err != nil {
		log.Printf("conversation: faq seed failed err=%v", err)
	}

	history, err := c.bot.History(ctx)
	if err != nil {
		log.Printf("conversation: history load failed, starting empty err=%v", err)
		history = nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages = history
	if len(c.messages) == 0 {
		welcome, err := c.bot.ProcessUserMessage(ctx, "")
		if err != nil {
			return err
		}
		c.messages = []chat.Message{welcome}
		c.persistLocked(ctx)
	}

	if qs, err := c.bot.SuggestedQuestions(ctx); err != nil {
		log.Printf("conversation: load suggestions failed err=%v", err)
	} else {
		c.suggested = qs
	}
	if cats, err := c.bot.Categories(ctx); err != nil {
		log.Printf("conversation: load categories failed err=%v", err)
	} else {
		c.categories = cats
	}
	return nil
}

// Send appends the user message and a typing placeholder, then resolves
// the reply in the background, mutating the placeholder in place (same id)
// when done. Empty input after trimming is a silent no-op. While a reply
// is pending further sends are rejected with ErrReplyPending.
func (c *Controller) Send(ctx context.Context, text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return ErrReplyPending
	}

	userMsg, err := chat.NewUserMessage(trimmed)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	placeholder, err := chat.NewTypingPlaceholder()
	if err != nil {
		c.mu.Unlock()
		return err
	}

	c.messages = append(c.messages, userMsg, placeholder)
	c.loading = true
	c.persistLocked(ctx)
	c.mu.Unlock()

	// Resolution outlives the request that started it: no cancellation,
	// it always runs to completion and resolves the placeholder.
	go c.resolve(context.WithoutCancel(ctx), placeholder.ID, trimmed)
	return nil
}

func (c *Controller) resolve(ctx context.Context, placeholderID, text string) {
	replyText := chat.FallbackText
	if reply, err := c.bot.ProcessUserMessage(ctx, text); err != nil {
		log.Printf("conversation: reply resolution failed err=%v", err)
	} else {
		replyText = reply.Text
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.messages {
		if c.messages[i].ID == placeholderID {
			c.messages[i].Text = replyText
			c.messages[i].IsTyping = false
			break
		}
	}
	c.loading = false
	c.persistLocked(ctx)
}

// Clear purges the persisted history and reseeds the list with a fresh
// welcome message.
func (c *Controller) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.bot.ClearHistory(ctx); err != nil {
		return err
	}
	welcome, err := c.bot.ProcessUserMessage(ctx, "")
	if err != nil {
		return err
	}
	c.messages = []chat.Message{welcome}
	c.persistLocked(ctx)
	return nil
}

func (c *Controller) SelectCategory(category string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = category
}

// persistLocked writes the full list whenever it is non-empty. Write
// faults are invisible to the user but must not vanish silently, so they
// land in the log.
func (c *Controller) persistLocked(ctx context.Context) {
	if len(c.messages) == 0 {
		return
	}
	snapshot := append([]chat.Message(nil), c.messages...)
	if err := c.bot.SaveHistory(ctx, snapshot); err != nil {
		log.Printf("conversation: persist history failed err=%v", err)
	}
}

// Messages returns a snapshot of the ordered message list.
func (c *Controller) Messages() []chat.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]chat.Message(nil), c.messages...)
}

func (c *Controller) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Controller) SuggestedQuestions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.suggested...)
}

func (c *Controller) Categories() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.categories...)
}

func (c *Controller) SelectedCategory() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}
