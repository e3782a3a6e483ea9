package memory

import (
	"sync"

	"dentadvisor-quiz-service/internal/app"
)

// SessionStore is an in-memory implementation of app.AttemptRepository.
// Attempts are anonymous and never persisted; losing them on restart is the
// intended lifecycle.
type SessionStore struct {
	mu       sync.RWMutex
	attempts map[string]*app.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		attempts: make(map[string]*app.Session),
	}
}

func (s *SessionStore) Put(session *app.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts[session.ID()] = session
}

func (s *SessionStore) Get(attemptID string) (*app.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.attempts[attemptID]
	return session, ok
}

func (s *SessionStore) Delete(attemptID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attempts, attemptID)
}
