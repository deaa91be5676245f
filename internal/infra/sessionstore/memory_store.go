package sessionstore

import (
	"context"
	"log/slog"
	"sync"

	"roost/internal/domain/entity"
	"roost/internal/domain/service"
)

// memoryStore keeps sessions in process memory. A restart signs
// everyone out, which the boot wipe would do anyway.
type memoryStore struct {
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[string]entity.Session
}

// NewMemoryStore creates an in-memory session store.
func NewMemoryStore(logger *slog.Logger) service.SessionStore {
	return &memoryStore{
		logger:   logger,
		sessions: make(map[string]entity.Session),
	}
}

func (s *memoryStore) Load(_ context.Context, sessionID string) *entity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}

	// Copy so callers cannot mutate the stored value.
	return &session
}

func (s *memoryStore) Save(_ context.Context, sessionID string, session *entity.Session) {
	if session == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionID] = *session
}

func (s *memoryStore) Delete(_ context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
}

func (s *memoryStore) Keys(_ context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		keys = append(keys, id)
	}

	return keys
}

func (s *memoryStore) DeleteAll(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = make(map[string]entity.Session)
}
