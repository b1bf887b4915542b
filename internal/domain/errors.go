// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidRole is returned when a role string is not a recognized role.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidTaskStatus is returned when a task status is not valid.
	ErrInvalidTaskStatus = errors.New("invalid task status")

	// ErrInvalidTaskPriority is returned when a task priority is not valid.
	ErrInvalidTaskPriority = errors.New("invalid task priority")
)

// IsValidationError reports whether err is one of the entity validation
// errors, so callers can treat bad input uniformly without enumerating
// every sentinel.
func IsValidationError(err error) bool {
	for _, sentinel := range []error{
		ErrValidation,
		ErrInvalidID,
		ErrInvalidRole,
		ErrInvalidTaskStatus,
		ErrInvalidTaskPriority,
		ErrEmptyActorID,
		ErrEmptyUsername,
		ErrEmptyPassword,
		ErrEmptyHashedPassword,
		ErrPasswordTooShort,
		ErrPasswordTooLong,
		ErrEmptyProjectID,
		ErrEmptyProjectName,
		ErrEmptyProjectOwner,
		ErrProjectNameTooLong,
		ErrEmptyTaskID,
		ErrEmptyTaskName,
		ErrEmptyTaskProject,
		ErrTaskNameTooLong,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
