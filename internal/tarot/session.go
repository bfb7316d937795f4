package tarot

import "sync"

// SessionState holds the process-lifetime half of per-user state: whether
// the user has been greeted and a mirror of their last drawn spread. The
// durable half (turns, readings) lives in Repo.
type SessionState struct {
	mu      sync.Mutex
	greeted map[string]bool
	spreads map[string][]string
}

func NewSessionState() *SessionState {
	return &SessionState{
		greeted: make(map[string]bool),
		spreads: make(map[string][]string),
	}
}

// Has reports whether any message has been processed for user.
func (s *SessionState) Has(user string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.greeted[user]
}

// Init marks the user's session as started. Called exactly once, on
// first contact.
func (s *SessionState) Init(user string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.greeted[user] = true
}

// RecordSpread overwrites the user's last spread.
func (s *SessionState) RecordSpread(user string, cardNames []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]string, len(cardNames))
	copy(cp, cardNames)
	s.spreads[user] = cp
}

// Spread returns the user's last spread, or ok=false if none exists.
func (s *SessionState) Spread(user string) ([]string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	names, ok := s.spreads[user]
	return names, ok
}
