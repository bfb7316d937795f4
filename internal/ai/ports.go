package ai

import "context"

// AI is the generative collaborator. It knows nothing about WhatsApp or
// the database; it receives a prepared message sequence and returns text.
type AI interface {
	Generate(ctx context.Context, messages []Message) (string, error)
}

// Message is the universal dialogue format for the AI.
type Message struct {
	Role    string // "user" | "assistant" | "system"
	Content string
}
