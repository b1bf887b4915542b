package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"

	"github.com/workdeck/workdeck-api/internal/domain"
	"github.com/workdeck/workdeck-api/internal/store"
)

// MemoryTaskStore implements store.TaskStore with an in-memory map.
type MemoryTaskStore struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]*domain.Task
}

// NewMemoryTaskStore creates an empty MemoryTaskStore.
func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{tasks: make(map[uuid.UUID]*domain.Task)}
}

var _ store.TaskStore = (*MemoryTaskStore)(nil)

// Create implements store.TaskStore.
func (m *MemoryTaskStore) Create(_ context.Context, t *domain.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *t
	m.tasks[t.ID] = &cp
	return nil
}

// GetByID implements store.TaskStore.
func (m *MemoryTaskStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tasks[id]
	if !ok || t.IsDeleted {
		return nil, store.ErrTaskNotFound
	}
	cp := *t
	return &cp, nil
}

// ListAssignedBy implements store.TaskStore.
func (m *MemoryTaskStore) ListAssignedBy(
	_ context.Context,
	managerID uuid.UUID,
	filter store.TaskFilter,
) ([]*domain.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Task
	for _, t := range m.tasks {
		if t.IsDeleted || t.AssignedBy == nil || *t.AssignedBy != managerID {
			continue
		}
		if matchesFilter(t, filter) {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ListAssignedTo implements store.TaskStore.
func (m *MemoryTaskStore) ListAssignedTo(
	_ context.Context,
	actorID uuid.UUID,
	filter store.TaskFilter,
) ([]*domain.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Task
	for _, t := range m.tasks {
		if t.IsDeleted || t.AssignedTo == nil || *t.AssignedTo != actorID {
			continue
		}
		if matchesFilter(t, filter) {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

// matchesFilter applies the list filter fields the memory store supports.
// Username scoping requires the actor store, so tests filter by ID instead.
func matchesFilter(t *domain.Task, filter store.TaskFilter) bool {
	if filter.ProjectID != uuid.Nil && t.ProjectID != filter.ProjectID {
		return false
	}
	if filter.Priority != "" && t.Priority != filter.Priority {
		return false
	}
	if filter.Status != "" && t.Status != filter.Status {
		return false
	}
	return true
}

// Update implements store.TaskStore.
func (m *MemoryTaskStore) Update(_ context.Context, t *domain.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.tasks[t.ID]
	if !ok || cur.IsDeleted {
		return store.ErrTaskNotFound
	}
	cp := *t
	m.tasks[t.ID] = &cp
	return nil
}

// SoftDelete implements store.TaskStore.
func (m *MemoryTaskStore) SoftDelete(_ context.Context, id uuid.UUID, deletedBy uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok || t.IsDeleted {
		return store.ErrTaskNotFound
	}
	t.IsDeleted = true
	t.ModifiedBy = &deletedBy
	return nil
}

// WithTx implements store.TaskStore.
func (m *MemoryTaskStore) WithTx(_ *sql.Tx) store.TaskStore { return m }
