package sessioninfra

import (
	"context"
	"sync"

	"github.com/Abraxas-365/counsel/counseling/session"
	"github.com/Abraxas-365/counsel/pkg/kernel"
)

// MemorySessionRepository keeps sessions in process memory. Used in tests
// and for running the service without a database.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[kernel.SessionID]session.Session
}

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[kernel.SessionID]session.Session),
	}
}

func (r *MemorySessionRepository) GetByID(_ context.Context, id kernel.SessionID) (*session.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, session.ErrSessionNotFound().WithDetail("session_id", id)
	}
	copied := s
	return &copied, nil
}

func (r *MemorySessionRepository) Upsert(_ context.Context, s *session.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[s.ID] = *s
	return nil
}

func (r *MemorySessionRepository) Delete(_ context.Context, id kernel.SessionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return session.ErrSessionNotFound().WithDetail("session_id", id)
	}
	delete(r.sessions, id)
	return nil
}
