package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/workdeck/workdeck-api/internal/api/shared"
	"github.com/workdeck/workdeck-api/internal/domain"
)

// getActorFromContext extracts the authenticated actor placed in the
// request context by the auth middleware.
func getActorFromContext(r *http.Request) (*domain.Actor, bool) {
	actor, ok := r.Context().Value(shared.ActorContextKey).(*domain.Actor)
	if !ok || actor == nil {
		return nil, false
	}
	return actor, true
}

// getPathUUID extracts and parses a UUID path parameter.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, fmt.Errorf("%s is required: %w", paramName, domain.ErrInvalidID)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s has invalid format: %w", paramName, domain.ErrInvalidID)
	}

	return id, nil
}

// requireActorAndPathUUID is the composite helper used by handlers working
// on a single resource: it resolves the actor and the path ID, writing the
// error response itself when either is missing.
func requireActorAndPathUUID(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
) (*domain.Actor, uuid.UUID, bool) {
	actor, ok := getActorFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return nil, uuid.Nil, false
	}

	id, err := getPathUUID(r, paramName)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return nil, uuid.Nil, false
	}

	return actor, id, true
}
