// Package memory provides in-memory implementations of the session and order
// stores, used by tests and the local chat mode.
package memory

import (
	"context"
	"sync"

	"github.com/NishaManivannan/Bakery-chatbot/pkg/domain"
)

// SessionStore implements ports.SessionStore in memory.
// Safe for concurrent use.
type SessionStore struct {
	mu   sync.RWMutex
	data map[string]*domain.ConversationState
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		data: make(map[string]*domain.ConversationState),
	}
}

// Save persists the state in memory. The state is cloned so callers cannot
// mutate the stored copy through their pointer.
func (s *SessionStore) Save(ctx context.Context, sessionID string, state *domain.ConversationState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = state.Clone()
	return nil
}

// Load retrieves a clone of the stored state.
func (s *SessionStore) Load(ctx context.Context, sessionID string) (*domain.ConversationState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.data[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return state.Clone(), nil
}

// Clear removes the session. Clearing an unknown session is a no-op.
func (s *SessionStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}
