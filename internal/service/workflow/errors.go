// Package workflow implements the task-lifecycle orchestrator.
//
// It composes the authorization policies with the task state machine:
// resolve the acting role, gate the action, apply forced-field transitions,
// and attach the derived scheduling metrics on reads. Denials on mutation
// paths carry an explicit reason; denials on read paths surface as not-found
// so foreign resources stay invisible.
package workflow

import (
	"errors"
	"fmt"
)

// ErrForbidden is the sentinel for authorization denials.
// Use errors.Is to detect it; errors.As with *ForbiddenError for the reason.
var ErrForbidden = errors.New("forbidden")

// ForbiddenError is an authorization denial carrying the policy's reason,
// surfaced verbatim to the client on mutation paths.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("forbidden: %s", e.Reason)
}

// Is makes errors.Is(err, ErrForbidden) match any ForbiddenError.
func (e *ForbiddenError) Is(target error) bool {
	return target == ErrForbidden
}

func forbidden(reason string) error {
	return &ForbiddenError{Reason: reason}
}

// DenialReason extracts the policy reason from a forbidden error.
// Returns "" when err is not a ForbiddenError.
func DenialReason(err error) string {
	var fe *ForbiddenError
	if errors.As(err, &fe) {
		return fe.Reason
	}
	return ""
}
