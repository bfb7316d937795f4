package tarot

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mysticline/tarot-ai-bridge/internal/ai"
)

type fakeRepo struct {
	mu       sync.Mutex
	turns    []Turn
	readings []Reading
	turnErr  error
	nextID   int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{}
}

func (f *fakeRepo) AppendTurn(_ context.Context, user string, role Role, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.turnErr != nil {
		return f.turnErr
	}
	f.nextID++
	f.turns = append(f.turns, Turn{
		ID:        f.nextID,
		User:      user,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	})
	return nil
}

func (f *fakeRepo) RecentTurns(_ context.Context, user string, limit int) ([]Turn, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var mine []Turn
	for _, t := range f.turns {
		if t.User == user {
			mine = append(mine, t)
		}
	}
	if len(mine) > limit {
		mine = mine[len(mine)-limit:]
	}
	return mine, nil
}

func (f *fakeRepo) AppendReading(_ context.Context, user, question string, cardNames []string, answer string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.readings = append(f.readings, Reading{
		ID:        f.nextID,
		User:      user,
		Question:  question,
		CardNames: append([]string(nil), cardNames...),
		Answer:    answer,
		CreatedAt: time.Now(),
	})
	return nil
}

func (f *fakeRepo) RecentReadings(_ context.Context, user string, limit int) ([]Reading, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var mine []Reading
	for i := len(f.readings) - 1; i >= 0 && len(mine) < limit; i-- {
		if f.readings[i].User == user {
			mine = append(mine, f.readings[i])
		}
	}
	return mine, nil
}

func (f *fakeRepo) userTurns(user string) []Turn {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Turn
	for _, t := range f.turns {
		if t.User == user {
			out = append(out, t)
		}
	}
	return out
}

type fakeOutbound struct {
	mu     sync.Mutex
	sent   []string
	failOn map[string]bool // body -> fail
}

func newFakeOutbound() *fakeOutbound {
	return &fakeOutbound{failOn: make(map[string]bool)}
}

func (f *fakeOutbound) Send(_ context.Context, _ string, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn[body] {
		return errors.New("delivery refused")
	}
	f.sent = append(f.sent, body)
	return nil
}

func (f *fakeOutbound) bodies() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

type fakeAI struct {
	mu    sync.Mutex
	reply string
	err   error
	seen  [][]ai.Message
}

func (f *fakeAI) Generate(_ context.Context, messages []ai.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, messages)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}
