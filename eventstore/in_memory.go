package eventstore

import (
	"sync"

	"github.com/hupe1980/agentgate/protocol"
)

const (
	// maxEvents caps how many envelopes are kept in memory.
	maxEvents = 1000
	// maxRecent caps how many envelopes Recent returns per call.
	maxRecent = 500
)

// Store is the read/write surface the dashboard server depends on.
type Store interface {
	Append(env protocol.Envelope)
	Recent(limit int) []protocol.Envelope
	DeleteSession(sessionID string) int
	Clear() int
}

// InMemoryStore is a volatile Store implementation keeping the most recent
// envelopes in a process local slice. It is safe for concurrent access and
// best suited for tests or ephemeral demo servers.
type InMemoryStore struct {
	mu     sync.RWMutex
	events []protocol.Envelope
}

// NewInMemoryStore constructs an empty in-memory event store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// Append records an envelope, evicting the oldest entries beyond the cap.
func (s *InMemoryStore) Append(env protocol.Envelope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, env)
	if len(s.events) > maxEvents {
		s.events = s.events[len(s.events)-maxEvents:]
	}
}

// Recent returns up to limit envelopes in reverse chronological order
// (newest first). A non-positive or oversized limit falls back to the cap.
func (s *InMemoryStore) Recent(limit int) []protocol.Envelope {
	if limit <= 0 || limit > maxRecent {
		limit = maxRecent
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit > len(s.events) {
		limit = len(s.events)
	}

	result := make([]protocol.Envelope, 0, limit)
	for i := len(s.events) - 1; i >= len(s.events)-limit; i-- {
		result = append(result, s.events[i])
	}

	return result
}

// DeleteSession removes all envelopes for the given session id and reports
// how many were dropped.
func (s *InMemoryStore) DeleteSession(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.events[:0]
	for _, env := range s.events {
		if env.SessionID != sessionID {
			kept = append(kept, env)
		}
	}

	dropped := len(s.events) - len(kept)
	s.events = kept

	return dropped
}

// Clear drops all envelopes and reports how many were removed.
func (s *InMemoryStore) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.events)
	s.events = nil
	return n
}
