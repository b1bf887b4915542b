package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/workdeck/workdeck-api/internal/domain"
	"github.com/workdeck/workdeck-api/internal/service/auth"
	"github.com/workdeck/workdeck-api/internal/service/workflow"
	"github.com/workdeck/workdeck-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden sentinel", workflow.ErrForbidden, http.StatusForbidden},
		{"forbidden with reason", &workflow.ForbiddenError{Reason: "nope"}, http.StatusForbidden},
		{"task not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"project not found", store.ErrProjectNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", store.ErrActorNotFound), http.StatusNotFound},
		{"username exists", store.ErrUsernameExists, http.StatusConflict},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest},
		{"empty task name", domain.ErrEmptyTaskName, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	// Policy denials surface their reason verbatim.
	denial := &workflow.ForbiddenError{
		Reason: "only owner of project is authorized to perform operation",
	}
	assert.Equal(t,
		"only owner of project is authorized to perform operation",
		GetSafeErrorMessage(denial))

	// Everything else maps to a fixed phrase.
	assert.Equal(t, "Task not found", GetSafeErrorMessage(store.ErrTaskNotFound))
	assert.Equal(t, "Username already exists", GetSafeErrorMessage(store.ErrUsernameExists))
	assert.Equal(t, "Invalid credentials", GetSafeErrorMessage(auth.ErrInvalidCredentials))

	// Unknown errors never leak their message.
	internal := errors.New("pq: connection to host 10.0.0.5 refused")
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(internal))

	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}
