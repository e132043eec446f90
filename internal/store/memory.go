// Package store keeps live game sessions in process memory. There is
// deliberately no durable backend: a session exists for the lifetime
// of the process and is discarded with it.
package store

import (
	"sync"

	"github.com/kaheicheng13-source/Interactive-Teaching/internal/domain/gridsession"
)

// MemoryStore is a mutex-guarded registry of sessions keyed by id.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*gridsession.Session
}

// NewMemory creates an empty session registry.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*gridsession.Session),
	}
}

// SaveSession registers a session under the given id.
func (s *MemoryStore) SaveSession(id string, session *gridsession.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = session
}

// GetSession returns the session with the given id, or ErrNotFound.
func (s *MemoryStore) GetSession(id string) (*gridsession.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return session, nil
}

// DeleteSession removes the session with the given id, or returns
// ErrNotFound if it does not exist.
func (s *MemoryStore) DeleteSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}
