package tarot

import (
	"context"
	"fmt"
	"strings"

	"github.com/mysticline/tarot-ai-bridge/internal/ai"
	"github.com/mysticline/tarot-ai-bridge/internal/deck"
)

const (
	spreadSize    = 3
	historyWindow = 6
)

// ContextBuilder assembles the message sequence for the AI collaborator:
// persona + spread as the system message, a bounded slice of recent turns,
// then the current user message.
type ContextBuilder struct {
	deck     *deck.Deck
	sessions *SessionState
	repo     Repo
}

func NewContextBuilder(d *deck.Deck, sessions *SessionState, repo Repo) *ContextBuilder {
	return &ContextBuilder{deck: d, sessions: sessions, repo: repo}
}

// Build resolves the spread and the context window for user's message.
// If the user has a recorded spread, its cards are looked up by name in
// catalog order (draw order is not preserved). Otherwise a fresh sample
// is drawn for this turn only and not recorded as the canonical spread.
func (b *ContextBuilder) Build(ctx context.Context, user, text string) ([]deck.Card, []ai.Message, error) {
	var spread []deck.Card
	if names, ok := b.sessions.Spread(user); ok {
		spread = b.deck.Filter(names)
	} else {
		var err error
		spread, err = b.deck.Sample(spreadSize)
		if err != nil {
			return nil, nil, err
		}
	}

	// The current inbound turn is already persisted, so fetch one extra
	// and drop it from the history; it re-enters as the final entry.
	turns, err := b.repo.RecentTurns(ctx, user, historyWindow+1)
	if err != nil {
		return nil, nil, fmt.Errorf("context history: %w", err)
	}
	if n := len(turns); n > 0 && turns[n-1].Role == RoleUser && turns[n-1].Content == text {
		turns = turns[:n-1]
	}
	if len(turns) > historyWindow {
		turns = turns[len(turns)-historyWindow:]
	}

	msgs := make([]ai.Message, 0, len(turns)+2)
	msgs = append(msgs, ai.Message{Role: "system", Content: systemPrompt(spread)})
	for _, t := range turns {
		msgs = append(msgs, ai.Message{Role: string(t.Role), Content: t.Content})
	}
	msgs = append(msgs, ai.Message{Role: "user", Content: text})

	return spread, msgs, nil
}

func systemPrompt(spread []deck.Card) string {
	var sb strings.Builder
	sb.WriteString(PersonaPrompt)
	sb.WriteString("\n\nCards on the table:\n")
	for i, c := range spread {
		fmt.Fprintf(&sb, "%d. %s: %s\n", i+1, c.Name, c.Meaning)
	}
	return sb.String()
}
