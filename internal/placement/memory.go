package placement

import (
	"context"
	"sync"

	"placement-workers/internal/models"
)

type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*models.Session)}
}

func (m *MemoryStore) Create(_ context.Context, s *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[s.ID]; ok {
		return ErrSessionExists
	}
	m.sessions[s.ID] = s.Clone()
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s.Clone(), nil
}

func (m *MemoryStore) Update(_ context.Context, id string, fn func(*models.Session) error) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	next := cur.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	m.sessions[id] = next
	return next.Clone(), nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}
