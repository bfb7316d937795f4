package tarot

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const turnTimeout = 60 * time.Second

type Handler struct {
	svc         Service
	verifyToken string
	log         *zap.Logger
}

func NewHandler(svc Service, verifyToken string, log *zap.Logger) *Handler {
	return &Handler{svc: svc, verifyToken: verifyToken, log: log}
}

// HandleVerify answers the Meta webhook verification handshake.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("hub.mode") == "subscribe" && q.Get("hub.verify_token") == h.verifyToken {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(q.Get("hub.challenge")))
		return
	}
	h.log.Warn("webhook verification failed", zap.String("token", q.Get("hub.verify_token")))
	w.WriteHeader(http.StatusForbidden)
}

// webhookPayload is the WhatsApp Cloud API envelope, reduced to the
// fields the core consumes.
type webhookPayload struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Messages []struct {
					From string `json:"from"`
					Text struct {
						Body string `json:"body"`
					} `json:"text"`
				} `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// HandleWebhook receives inbound events. The provider is acked
// immediately; the conversational turn runs on its own goroutine so the
// webhook is never kept waiting on AI or network latency.
func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	var payload webhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusOK)

	from, text, ok := extractMessage(payload)
	if !ok {
		// Status callbacks and other non-message events.
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), turnTimeout)
		defer cancel()
		if err := h.svc.HandleIncoming(ctx, from, text); err != nil {
			h.log.Error("turn failed", zap.String("user", from), zap.Error(err))
		}
	}()
}

func extractMessage(p webhookPayload) (from, text string, ok bool) {
	if len(p.Entry) == 0 || len(p.Entry[0].Changes) == 0 {
		return "", "", false
	}
	msgs := p.Entry[0].Changes[0].Value.Messages
	if len(msgs) == 0 {
		return "", "", false
	}
	return msgs[0].From, msgs[0].Text.Body, true
}
