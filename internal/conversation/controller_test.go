package conversation

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/vokaflow/faqbot/internal/chat"
)

// fakeBot answers with a fixed reply and can hold replies behind a gate to
// observe the pending state.
type fakeBot struct {
	mu      sync.Mutex
	history []chat.Message
	saved   [][]chat.Message
	cleared int

	reply     string
	gate      chan struct{} // non-nil: ProcessUserMessage blocks until closed
	suggested []string
	cats      []string
}

func (b *fakeBot) History(ctx context.Context) ([]chat.Message, error) {
	_ = ctx
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]chat.Message(nil), b.history...), nil
}

func (b *fakeBot) SaveHistory(ctx context.Context, msgs []chat.Message) error {
	_ = ctx
	b.mu.Lock()
	defer b.mu.Unlock()
	b.saved = append(b.saved, append([]chat.Message(nil), msgs...))
	return nil
}

func (b *fakeBot) ClearHistory(ctx context.Context) error {
	_ = ctx
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cleared++
	return nil
}

func (b *fakeBot) ProcessUserMessage(ctx context.Context, text string) (chat.Message, error) {
	_ = ctx
	if strings.TrimSpace(text) == "" {
		return chat.NewBotMessage(chat.WelcomeText)
	}
	if b.gate != nil {
		<-b.gate
	}
	return chat.NewBotMessage(b.reply)
}

func (b *fakeBot) SuggestedQuestions(ctx context.Context) ([]string, error) {
	_ = ctx
	return b.suggested, nil
}

func (b *fakeBot) Categories(ctx context.Context) ([]string, error) {
	_ = ctx
	return b.cats, nil
}

func (b *fakeBot) lastSaved() []chat.Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.saved) == 0 {
		return nil
	}
	return b.saved[len(b.saved)-1]
}

type fakeSeeder struct {
	calls int
}

func (s *fakeSeeder) InitializeDefaults(ctx context.Context) error {
	_ = ctx
	s.calls++
	return nil
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not reached within deadline")
}

func TestMount_EmptyHistorySeedsWelcome(t *testing.T) {
	bot := &fakeBot{suggested: []string{"¿Cómo iniciar sesión?"}, cats: []string{"Cuenta"}}
	seeder := &fakeSeeder{}
	ctrl := NewController(bot, seeder)

	if err := ctrl.Mount(context.Background()); err != nil {
		t.Fatalf("mount: %v", err)
	}

	if seeder.calls != 1 {
		t.Fatalf("expected default-FAQ seeding to be triggered once, got %d", seeder.calls)
	}
	msgs := ctrl.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Type != chat.MessageBot || msgs[0].Text != chat.WelcomeText {
		t.Fatalf("expected welcome message, got %+v", msgs[0])
	}
	if got := ctrl.SuggestedQuestions(); len(got) != 1 {
		t.Fatalf("expected cached suggestions, got %v", got)
	}
	if got := ctrl.Categories(); len(got) != 1 {
		t.Fatalf("expected cached categories, got %v", got)
	}
	if saved := bot.lastSaved(); len(saved) != 1 {
		t.Fatalf("welcome must be persisted, got %d saved messages", len(saved))
	}
}

func TestMount_RestoresExistingHistory(t *testing.T) {
	existing := []chat.Message{
		{ID: "01A", Text: "hola", Type: chat.MessageUser, Timestamp: time.Now()},
		{ID: "01B", Text: "respuesta", Type: chat.MessageBot, Timestamp: time.Now()},
	}
	bot := &fakeBot{history: existing}
	ctrl := NewController(bot, &fakeSeeder{})

	if err := ctrl.Mount(context.Background()); err != nil {
		t.Fatalf("mount: %v", err)
	}

	msgs := ctrl.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected restored history, got %d messages", len(msgs))
	}
	if msgs[0].ID != "01A" || msgs[1].ID != "01B" {
		t.Fatalf("history order changed: %+v", msgs)
	}
}

func TestSend_EmptyTextIsNoop(t *testing.T) {
	bot := &fakeBot{}
	ctrl := NewController(bot, &fakeSeeder{})
	if err := ctrl.Mount(context.Background()); err != nil {
		t.Fatalf("mount: %v", err)
	}

	for _, input := range []string{"", "   ", "\n"} {
		if err := ctrl.Send(context.Background(), input); err != nil {
			t.Fatalf("send %q: %v", input, err)
		}
	}
	if len(ctrl.Messages()) != 1 {
		t.Fatalf("empty sends must not append messages")
	}
}

func TestSend_PlaceholderResolvedInPlace(t *testing.T) {
	gate := make(chan struct{})
	bot := &fakeBot{reply: "aquí tienes la respuesta", gate: gate}
	ctrl := NewController(bot, &fakeSeeder{})
	if err := ctrl.Mount(context.Background()); err != nil {
		t.Fatalf("mount: %v", err)
	}

	if err := ctrl.Send(context.Background(), "hola"); err != nil {
		t.Fatalf("send: %v", err)
	}

	// pending: [welcome, user, placeholder]
	msgs := ctrl.Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages while pending, got %d", len(msgs))
	}
	user, placeholder := msgs[1], msgs[2]
	if user.Type != chat.MessageUser || user.Text != "hola" {
		t.Fatalf("unexpected user message: %+v", user)
	}
	if placeholder.Type != chat.MessageBot || !placeholder.IsTyping {
		t.Fatalf("expected typing placeholder, got %+v", placeholder)
	}
	if user.ID == placeholder.ID {
		t.Fatalf("user and placeholder share an id")
	}
	if !ctrl.IsLoading() {
		t.Fatalf("expected loading while reply is pending")
	}

	// a second send while pending must be rejected, not stack placeholders
	if err := ctrl.Send(context.Background(), "otra"); err != ErrReplyPending {
		t.Fatalf("expected ErrReplyPending, got %v", err)
	}

	close(gate)
	waitFor(t, func() bool { return !ctrl.IsLoading() })

	msgs = ctrl.Messages()
	if len(msgs) != 3 {
		t.Fatalf("resolution must mutate in place, got %d messages", len(msgs))
	}
	resolved := msgs[2]
	if resolved.ID != placeholder.ID {
		t.Fatalf("placeholder id changed on resolution: %s != %s", resolved.ID, placeholder.ID)
	}
	if resolved.IsTyping {
		t.Fatalf("resolved message still marked as typing")
	}
	if resolved.Text != "aquí tienes la respuesta" {
		t.Fatalf("unexpected resolved text: %q", resolved.Text)
	}

	// the last persisted state reflects the final list
	saved := bot.lastSaved()
	if len(saved) != 3 || saved[2].IsTyping || saved[2].Text != "aquí tienes la respuesta" {
		t.Fatalf("last persisted state is stale: %+v", saved)
	}
}

func TestSend_AllowedAgainAfterResolution(t *testing.T) {
	bot := &fakeBot{reply: "ok"}
	ctrl := NewController(bot, &fakeSeeder{})
	if err := ctrl.Mount(context.Background()); err != nil {
		t.Fatalf("mount: %v", err)
	}

	if err := ctrl.Send(context.Background(), "uno"); err != nil {
		t.Fatalf("send: %v", err)
	}
	waitFor(t, func() bool { return !ctrl.IsLoading() })

	if err := ctrl.Send(context.Background(), "dos"); err != nil {
		t.Fatalf("second send after resolution: %v", err)
	}
	waitFor(t, func() bool { return !ctrl.IsLoading() })

	msgs := ctrl.Messages()
	if len(msgs) != 5 {
		t.Fatalf("expected welcome + 2 exchanges = 5 messages, got %d", len(msgs))
	}
	for i, m := range msgs {
		if m.IsTyping {
			t.Fatalf("message %d still a placeholder after resolution", i)
		}
	}
}

func TestClear_ReseedsWelcome(t *testing.T) {
	bot := &fakeBot{reply: "ok"}
	ctrl := NewController(bot, &fakeSeeder{})
	if err := ctrl.Mount(context.Background()); err != nil {
		t.Fatalf("mount: %v", err)
	}
	if err := ctrl.Send(context.Background(), "hola"); err != nil {
		t.Fatalf("send: %v", err)
	}
	waitFor(t, func() bool { return !ctrl.IsLoading() })

	if err := ctrl.Clear(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}

	if bot.cleared != 1 {
		t.Fatalf("expected persisted history to be purged once, got %d", bot.cleared)
	}
	msgs := ctrl.Messages()
	if len(msgs) != 1 || msgs[0].Text != chat.WelcomeText {
		t.Fatalf("expected a fresh welcome after clear, got %+v", msgs)
	}
}

func TestSelectCategory(t *testing.T) {
	ctrl := NewController(&fakeBot{}, &fakeSeeder{})

	ctrl.SelectCategory("Cuenta")
	if got := ctrl.SelectedCategory(); got != "Cuenta" {
		t.Fatalf("expected selected category, got %q", got)
	}
	ctrl.SelectCategory("")
	if got := ctrl.SelectedCategory(); got != "" {
		t.Fatalf("expected cleared selection, got %q", got)
	}
}
