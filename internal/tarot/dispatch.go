package tarot

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/mysticline/tarot-ai-bridge/internal/deck"
)

var segmentBoundary = regexp.MustCompile(`\n{2,}`)

// SplitReply breaks a generated reply on blank-line boundaries into
// non-empty segments, preserving order.
func SplitReply(reply string) []string {
	parts := segmentBoundary.Split(reply, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Dispatcher delivers a generated reply segment by segment and persists
// the outcome: one assistant turn per segment, one reading for the whole.
type Dispatcher struct {
	out  Outbound
	repo Repo
	log  *zap.Logger
}

func NewDispatcher(out Outbound, repo Repo, log *zap.Logger) *Dispatcher {
	return &Dispatcher{out: out, repo: repo, log: log}
}

// Dispatch sends each segment in order. A delivery failure is logged and
// the remaining segments are still attempted; a persistence failure
// propagates, since the durable transcript must not silently lose turns.
func (d *Dispatcher) Dispatch(ctx context.Context, user, question string, spread []deck.Card, reply string) error {
	for _, seg := range SplitReply(reply) {
		if err := d.out.Send(ctx, user, seg); err != nil {
			d.log.Warn("segment delivery failed",
				zap.String("user", user),
				zap.Error(err),
			)
		}
		if err := d.repo.AppendTurn(ctx, user, RoleAssistant, seg); err != nil {
			return err
		}
	}

	names := make([]string, len(spread))
	for i, c := range spread {
		names[i] = c.Name
	}
	return d.repo.AppendReading(ctx, user, question, names, reply)
}
