package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Role identifies the single role an actor holds. The set of roles is closed;
// authorization logic dispatches over this type and treats anything outside
// the enum as deny-everything.
type Role string

// Possible actor roles.
const (
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Common validation errors for Actor
var (
	ErrEmptyActorID        = errors.New("actor ID cannot be empty")
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 12 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// ParseRole converts a role string to a Role.
// Returns ErrInvalidRole for anything outside the closed enum.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleManager, RoleEmployee:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

// Valid reports whether the role is one of the recognized roles.
func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleEmployee:
		return true
	default:
		return false
	}
}

// Actor represents an authenticated user of the tracker together with their
// profile role. Exactly one role per actor; the role decides everything the
// authorization engine permits.
type Actor struct {
	ID             uuid.UUID  `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	Password       string     `json:"-"` // Plaintext password, used temporarily during registration/updates
	HashedPassword string     `json:"-"` // Never expose password hash in JSON
	Role           Role       `json:"role"`
	CreatedAt      time.Time  `json:"created_at"`
	ModifiedAt     time.Time  `json:"modified_at"`
	ModifiedBy     *uuid.UUID `json:"modified_by,omitempty"`
	IsDeleted      bool       `json:"is_deleted"`
}

// NewActor creates a new Actor with the given username, password and role.
// It generates a new UUID for the actor ID and sets the creation/modification
// timestamps. Returns an error if validation fails.
//
// NOTE: This function only sets up the actor structure with the plaintext
// password. The caller is responsible for hashing the password before storage.
func NewActor(username, email, password string, role Role) (*Actor, error) {
	actor := &Actor{
		ID:         uuid.New(),
		Username:   username,
		Email:      email,
		Password:   password, // Plaintext password - must be hashed before storage
		Role:       role,
		CreatedAt:  time.Now().UTC(),
		ModifiedAt: time.Now().UTC(),
	}

	if err := actor.Validate(); err != nil {
		return nil, err
	}

	return actor, nil
}

// Validate checks if the Actor has valid data.
// Returns an error if any field fails validation.
func (a *Actor) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyActorID
	}

	if a.Username == "" {
		return ErrEmptyUsername
	}

	if !a.Role.Valid() {
		return ErrInvalidRole
	}

	if a.Password != "" {
		if len(a.Password) < 12 {
			return ErrPasswordTooShort
		}
		// bcrypt's practical input limit
		if len(a.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if a.HashedPassword == "" {
		// Existing actors loaded from the store carry only the hash.
		return ErrEmptyPassword
	}

	return nil
}

// IsManager reports whether the actor holds the manager role.
func (a *Actor) IsManager() bool {
	return a.Role == RoleManager
}

// IsEmployee reports whether the actor holds the employee role.
func (a *Actor) IsEmployee() bool {
	return a.Role == RoleEmployee
}
