package tarot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mysticline/tarot-ai-bridge/internal/ai"
	"github.com/mysticline/tarot-ai-bridge/internal/deck"
	"github.com/mysticline/tarot-ai-bridge/internal/lang"
)

const historyReplyLimit = 5

type service struct {
	repo       Repo
	ai         ai.AI
	outbound   Outbound
	deck       *deck.Deck
	detector   *lang.Detector
	sessions   *SessionState
	builder    *ContextBuilder
	dispatcher *Dispatcher
	log        *zap.Logger
}

func NewService(repo Repo, aiClient ai.AI, outbound Outbound, d *deck.Deck, detector *lang.Detector, sessions *SessionState, log *zap.Logger) Service {
	return &service{
		repo:       repo,
		ai:         aiClient,
		outbound:   outbound,
		deck:       d,
		detector:   detector,
		sessions:   sessions,
		builder:    NewContextBuilder(d, sessions, repo),
		dispatcher: NewDispatcher(outbound, repo, log),
		log:        log,
	}
}

// HandleIncoming runs one conversational turn: validate, resolve language,
// greet on first contact, otherwise persist the user turn and execute the
// routed action. Outbound and AI failures are contained here; durable
// append failures propagate.
func (s *service) HandleIncoming(ctx context.Context, from, text string) error {
	text = strings.TrimSpace(text)
	if from == "" || text == "" {
		// Malformed or status-only payloads are expected, not errors.
		return nil
	}

	code := s.detector.Resolve(from, text)
	s.log.Info("incoming message",
		zap.String("user", from),
		zap.String("lang", code),
		zap.String("text", text),
	)

	if !s.sessions.Has(from) {
		return s.greet(ctx, from, code)
	}

	if err := s.repo.AppendTurn(ctx, from, RoleUser, text); err != nil {
		return err
	}

	action := Route(text)
	switch action.Kind {
	case ActionShuffle:
		return s.shuffle(ctx, from, text)
	case ActionShowLast:
		return s.showLast(ctx, from, code)
	case ActionShowHistory:
		return s.showHistory(ctx, from, code)
	default:
		return s.aiFallback(ctx, from, action.Text, code)
	}
}

// greet sends the first-contact greeting and records it as the first
// assistant turn. The triggering message is not routed or persisted.
func (s *service) greet(ctx context.Context, from, code string) error {
	greeting := pick(greetings, code)
	if err := s.outbound.Send(ctx, from, greeting); err != nil {
		s.log.Warn("greeting delivery failed", zap.String("user", from), zap.Error(err))
	}
	if err := s.repo.AppendTurn(ctx, from, RoleAssistant, greeting); err != nil {
		return err
	}
	s.sessions.Init(from)
	return nil
}

func (s *service) shuffle(ctx context.Context, from, question string) error {
	cards, err := s.deck.Sample(spreadSize)
	if err != nil {
		return err
	}

	names := make([]string, len(cards))
	lines := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.Name
		lines[i] = fmt.Sprintf("🔮 *%s*: %s", c.Name, c.Meaning)
	}
	reply := strings.Join(lines, "\n")

	if err := s.outbound.Send(ctx, from, reply); err != nil {
		s.log.Warn("shuffle delivery failed", zap.String("user", from), zap.Error(err))
	}
	if err := s.repo.AppendTurn(ctx, from, RoleAssistant, reply); err != nil {
		return err
	}
	if err := s.repo.AppendReading(ctx, from, question, names, reply); err != nil {
		return err
	}
	s.sessions.RecordSpread(from, names)
	return nil
}

// showLast replies with card names only, no meanings.
func (s *service) showLast(ctx context.Context, from, code string) error {
	names, ok := s.sessions.Spread(from)
	if !ok {
		return s.reply(ctx, from, pick(noCardsYet, code))
	}
	return s.reply(ctx, from, strings.Join(names, "\n"))
}

func (s *service) showHistory(ctx context.Context, from, code string) error {
	readings, err := s.repo.RecentReadings(ctx, from, historyReplyLimit)
	if err != nil {
		return err
	}
	if len(readings) == 0 {
		return s.reply(ctx, from, pick(noHistoryYet, code))
	}

	lines := make([]string, len(readings))
	for i, rd := range readings {
		lines[i] = fmt.Sprintf("%s — %s — %s",
			rd.CreatedAt.Format(time.DateOnly),
			rd.Question,
			strings.Join(rd.CardNames, ", "),
		)
	}
	return s.reply(ctx, from, strings.Join(lines, "\n"))
}

func (s *service) aiFallback(ctx context.Context, from, text, code string) error {
	spread, msgs, err := s.builder.Build(ctx, from, text)
	if err != nil {
		return err
	}

	reply, err := s.ai.Generate(ctx, msgs)
	if err != nil {
		s.log.Error("ai generation failed", zap.String("user", from), zap.Error(err))
		// No reading is persisted for a failed attempt; the user still
		// gets an answer so the conversation is never left hanging.
		return s.reply(ctx, from, pick(apologies, code))
	}

	return s.dispatcher.Dispatch(ctx, from, text, spread, reply)
}

// reply sends a single deterministic message and records it as an
// assistant turn. Delivery failures are logged, not fatal.
func (s *service) reply(ctx context.Context, from, body string) error {
	if err := s.outbound.Send(ctx, from, body); err != nil {
		s.log.Warn("delivery failed", zap.String("user", from), zap.Error(err))
	}
	return s.repo.AppendTurn(ctx, from, RoleAssistant, body)
}
