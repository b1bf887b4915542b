package domain

import (
	"testing"
)

func TestParseRole(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input   string
		want    Role
		wantErr error
	}{
		{"manager", RoleManager, nil},
		{"employee", RoleEmployee, nil},
		{"", "", ErrInvalidRole},
		{"admin", "", ErrInvalidRole},
		{"MANAGER", "", ErrInvalidRole},
	}

	for _, tc := range cases {
		got, err := ParseRole(tc.input)
		if err != tc.wantErr {
			t.Errorf("ParseRole(%q): expected error %v, got %v", tc.input, tc.wantErr, err)
		}
		if got != tc.want {
			t.Errorf("ParseRole(%q): expected %q, got %q", tc.input, tc.want, got)
		}
	}
}

func TestNewActor(t *testing.T) {
	t.Parallel()

	actor, err := NewActor("mona", "mona@example.com", "a-long-enough-password", RoleManager)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if actor.Username != "mona" {
		t.Errorf("Expected username mona, got %s", actor.Username)
	}

	if actor.Role != RoleManager {
		t.Errorf("Expected role manager, got %s", actor.Role)
	}

	if actor.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if actor.IsDeleted {
		t.Error("Expected new actor not to be soft-deleted")
	}

	// Empty username
	_, err = NewActor("", "x@example.com", "a-long-enough-password", RoleEmployee)
	if err != ErrEmptyUsername {
		t.Errorf("Expected error %v, got %v", ErrEmptyUsername, err)
	}

	// Unrecognized role
	_, err = NewActor("eve", "eve@example.com", "a-long-enough-password", Role("intern"))
	if err != ErrInvalidRole {
		t.Errorf("Expected error %v, got %v", ErrInvalidRole, err)
	}

	// Short password
	_, err = NewActor("eve", "eve@example.com", "short", RoleEmployee)
	if err != ErrPasswordTooShort {
		t.Errorf("Expected error %v, got %v", ErrPasswordTooShort, err)
	}
}

func TestActorValidateHashedOnly(t *testing.T) {
	t.Parallel()

	actor, err := NewActor("mona", "mona@example.com", "a-long-enough-password", RoleManager)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// An actor loaded from the store has only the hash.
	actor.Password = ""
	actor.HashedPassword = "$2a$10$fakehashfakehashfakehash"
	if err := actor.Validate(); err != nil {
		t.Errorf("Expected hashed-only actor to validate, got %v", err)
	}

	actor.HashedPassword = ""
	if err := actor.Validate(); err != ErrEmptyPassword {
		t.Errorf("Expected error %v, got %v", ErrEmptyPassword, err)
	}
}
