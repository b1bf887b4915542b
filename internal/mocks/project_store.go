package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"

	"github.com/workdeck/workdeck-api/internal/domain"
	"github.com/workdeck/workdeck-api/internal/store"
)

// MemoryProjectStore implements store.ProjectStore with an in-memory map.
type MemoryProjectStore struct {
	mu       sync.RWMutex
	projects map[uuid.UUID]*domain.Project
}

// NewMemoryProjectStore creates an empty MemoryProjectStore.
func NewMemoryProjectStore() *MemoryProjectStore {
	return &MemoryProjectStore{projects: make(map[uuid.UUID]*domain.Project)}
}

var _ store.ProjectStore = (*MemoryProjectStore)(nil)

// Create implements store.ProjectStore.
func (m *MemoryProjectStore) Create(_ context.Context, p *domain.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.projects[p.ID] = &cp
	return nil
}

// GetByID implements store.ProjectStore.
func (m *MemoryProjectStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.projects[id]
	if !ok || p.IsDeleted {
		return nil, store.ErrProjectNotFound
	}
	cp := *p
	return &cp, nil
}

// ListOwnedBy implements store.ProjectStore.
func (m *MemoryProjectStore) ListOwnedBy(_ context.Context, ownerID uuid.UUID) ([]*domain.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Project
	for _, p := range m.projects {
		if p.OwnerID == ownerID && !p.IsDeleted {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ListMemberOf implements store.ProjectStore.
func (m *MemoryProjectStore) ListMemberOf(_ context.Context, actorID uuid.UUID) ([]*domain.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Project
	for _, p := range m.projects {
		if p.HasMember(actorID) && !p.IsDeleted {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

// Update implements store.ProjectStore.
func (m *MemoryProjectStore) Update(_ context.Context, p *domain.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.projects[p.ID]
	if !ok || cur.IsDeleted {
		return store.ErrProjectNotFound
	}
	cp := *p
	m.projects[p.ID] = &cp
	return nil
}

// SoftDelete implements store.ProjectStore.
func (m *MemoryProjectStore) SoftDelete(_ context.Context, id uuid.UUID, deletedBy uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[id]
	if !ok || p.IsDeleted {
		return store.ErrProjectNotFound
	}
	p.IsDeleted = true
	p.ModifiedBy = &deletedBy
	return nil
}

// WithTx implements store.ProjectStore.
func (m *MemoryProjectStore) WithTx(_ *sql.Tx) store.ProjectStore { return m }
