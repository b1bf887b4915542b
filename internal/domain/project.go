package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Project
var (
	ErrEmptyProjectID     = errors.New("project ID cannot be empty")
	ErrEmptyProjectName   = errors.New("project name cannot be empty")
	ErrEmptyProjectOwner  = errors.New("project owner cannot be empty")
	ErrProjectNameTooLong = errors.New("project name must be at most 100 characters")
)

// Project is a container of tasks owned by the manager who created it.
// Ownership is permanent; members are the employees who may read it.
// Projects are soft-deleted, never removed.
type Project struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	OwnerID     uuid.UUID   `json:"owner_id"`
	MemberIDs   []uuid.UUID `json:"member_ids"`
	CreatedAt   time.Time   `json:"created_at"`
	ModifiedAt  time.Time   `json:"modified_at"`
	ModifiedBy  *uuid.UUID  `json:"modified_by,omitempty"`
	IsDeleted   bool        `json:"is_deleted"`
}

// NewProject creates a new Project owned by the given actor.
// It generates a new UUID for the project ID and sets the timestamps.
// Returns an error if validation fails.
func NewProject(ownerID uuid.UUID, name, description string) (*Project, error) {
	project := &Project{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
		CreatedAt:   time.Now().UTC(),
		ModifiedAt:  time.Now().UTC(),
	}

	if err := project.Validate(); err != nil {
		return nil, err
	}

	return project, nil
}

// Validate checks if the Project has valid data.
// Returns an error if any field fails validation.
func (p *Project) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyProjectID
	}

	if p.Name == "" {
		return ErrEmptyProjectName
	}

	if len(p.Name) > 100 {
		return ErrProjectNameTooLong
	}

	if p.OwnerID == uuid.Nil {
		return ErrEmptyProjectOwner
	}

	return nil
}

// HasMember reports whether the given actor is a listed member of the project.
// The owner is not implicitly a member.
func (p *Project) HasMember(actorID uuid.UUID) bool {
	for _, id := range p.MemberIDs {
		if id == actorID {
			return true
		}
	}
	return false
}
