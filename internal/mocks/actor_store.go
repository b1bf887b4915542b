package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"

	"github.com/workdeck/workdeck-api/internal/domain"
	"github.com/workdeck/workdeck-api/internal/store"
)

// MemoryActorStore implements store.ActorStore with an in-memory map.
type MemoryActorStore struct {
	mu     sync.RWMutex
	actors map[uuid.UUID]*domain.Actor
}

// NewMemoryActorStore creates an empty MemoryActorStore.
func NewMemoryActorStore() *MemoryActorStore {
	return &MemoryActorStore{actors: make(map[uuid.UUID]*domain.Actor)}
}

var _ store.ActorStore = (*MemoryActorStore)(nil)

// Create implements store.ActorStore.
func (m *MemoryActorStore) Create(_ context.Context, a *domain.Actor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.actors {
		if existing.Username == a.Username && !existing.IsDeleted {
			return store.ErrUsernameExists
		}
	}
	cp := *a
	m.actors[a.ID] = &cp
	return nil
}

// GetByID implements store.ActorStore.
func (m *MemoryActorStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Actor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.actors[id]
	if !ok || a.IsDeleted {
		return nil, store.ErrActorNotFound
	}
	cp := *a
	return &cp, nil
}

// GetByUsername implements store.ActorStore.
func (m *MemoryActorStore) GetByUsername(_ context.Context, username string) (*domain.Actor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.actors {
		if a.Username == username && !a.IsDeleted {
			cp := *a
			return &cp, nil
		}
	}
	return nil, store.ErrActorNotFound
}

// List implements store.ActorStore.
func (m *MemoryActorStore) List(_ context.Context) ([]*domain.Actor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Actor
	for _, a := range m.actors {
		if !a.IsDeleted {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

// Update implements store.ActorStore.
func (m *MemoryActorStore) Update(_ context.Context, a *domain.Actor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.actors[a.ID]
	if !ok || cur.IsDeleted {
		return store.ErrActorNotFound
	}
	cp := *a
	m.actors[a.ID] = &cp
	return nil
}

// SoftDelete implements store.ActorStore.
func (m *MemoryActorStore) SoftDelete(_ context.Context, id uuid.UUID, deletedBy uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.actors[id]
	if !ok || a.IsDeleted {
		return store.ErrActorNotFound
	}
	a.IsDeleted = true
	a.ModifiedBy = &deletedBy
	return nil
}

// WithTx implements store.ActorStore. The in-memory store has no
// transactions, so it returns itself.
func (m *MemoryActorStore) WithTx(_ *sql.Tx) store.ActorStore { return m }
