package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/Varun9213/nextflow-chat-bot/internal/domain"
)

// SessionStore keeps per-session turn history in memory. Histories are
// append-only and live for the process lifetime; unbounded growth is an
// accepted limitation.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[domain.SessionID][]domain.Turn
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[domain.SessionID][]domain.Turn),
	}
}

// GetOrCreate resolves the effective session id. An empty id gets a fresh
// uuid; an unknown id is initialized with an empty history. Unknown ids are
// never rejected.
func (s *SessionStore) GetOrCreate(id domain.SessionID) domain.SessionID {
	if id == "" {
		id = domain.SessionID(uuid.NewString())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[id]; !exists {
		s.sessions[id] = nil
	}
	return id
}

func (s *SessionStore) Append(id domain.SessionID, role domain.Role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = append(s.sessions[id], domain.Turn{Role: role, Content: content})
}

// History returns a copy of the session's turns in append order.
func (s *SessionStore) History(id domain.SessionID) []domain.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.sessions[id]
	out := make([]domain.Turn, len(turns))
	copy(out, turns)
	return out
}
