package tarot

import (
	"context"
	"time"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one persisted message of a conversation, user or assistant.
type Turn struct {
	ID        int64
	User      string
	Role      Role
	Content   string
	CreatedAt time.Time
}

// Reading is one completed divination exchange: the question asked, the
// cards in play and the full answer.
type Reading struct {
	ID        int64
	User      string
	Question  string
	CardNames []string
	Answer    string
	CreatedAt time.Time
}

// Repo — durable persistence for turns and readings, keyed by user.
type Repo interface {
	AppendTurn(ctx context.Context, user string, role Role, content string) error
	RecentTurns(ctx context.Context, user string, limit int) ([]Turn, error)
	AppendReading(ctx context.Context, user, question string, cardNames []string, answer string) error
	RecentReadings(ctx context.Context, user string, limit int) ([]Reading, error)
}

// Outbound — delivery to the messaging provider.
type Outbound interface {
	Send(ctx context.Context, to, body string) error
}

// Service — per-message orchestration.
type Service interface {
	HandleIncoming(ctx context.Context, from, text string) error
}
