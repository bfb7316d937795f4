package tarot

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mysticline/tarot-ai-bridge/internal/deck"
)

func TestBuildUsesRecordedSpread(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	sessions := NewSessionState()
	sessions.RecordSpread("u1", []string{"The Moon", "The Star", "Death"})
	b := NewContextBuilder(deck.Default(), sessions, repo)

	spread, msgs, err := b.Build(context.Background(), "u1", "what now?")
	require.NoError(t, err)
	require.Len(t, spread, 3)

	require.NotEmpty(t, msgs)
	sys := msgs[0]
	assert.Equal(t, "system", sys.Role)
	assert.Contains(t, sys.Content, "tarot reader")
	for _, c := range spread {
		assert.Contains(t, sys.Content, c.Name)
		assert.Contains(t, sys.Content, c.Meaning)
	}

	last := msgs[len(msgs)-1]
	assert.Equal(t, "user", last.Role)
	assert.Equal(t, "what now?", last.Content)
}

func TestBuildDrawsImplicitSpreadWithoutRecordingIt(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	sessions := NewSessionState()
	b := NewContextBuilder(deck.Default(), sessions, repo)

	spread, _, err := b.Build(context.Background(), "u1", "hi")
	require.NoError(t, err)
	assert.Len(t, spread, 3)

	// Only an explicit /shuffle records the canonical spread.
	_, ok := sessions.Spread("u1")
	assert.False(t, ok)
}

func TestBuildCapsHistoryAtSixTurns(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	sessions := NewSessionState()
	b := NewContextBuilder(deck.Default(), sessions, repo)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, repo.AppendTurn(ctx, "u1", RoleUser, fmt.Sprintf("question %d", i)))
		require.NoError(t, repo.AppendTurn(ctx, "u1", RoleAssistant, fmt.Sprintf("answer %d", i)))
	}
	// The inbound turn is persisted before the context is built.
	require.NoError(t, repo.AppendTurn(ctx, "u1", RoleUser, "current question"))

	_, msgs, err := b.Build(ctx, "u1", "current question")
	require.NoError(t, err)

	// system + at most 6 history turns + current message
	require.Len(t, msgs, 1+historyWindow+1)

	history := msgs[1 : len(msgs)-1]
	assert.Equal(t, "question 7", history[0].Content, "oldest visible turn")
	assert.Equal(t, "answer 9", history[len(history)-1].Content)
	for _, m := range history {
		assert.False(t, strings.Contains(m.Content, "current question"),
			"current turn must appear only as the final entry")
	}
}
