package api

import (
	"net/http"

	"github.com/workdeck/workdeck-api/internal/api/shared"
	"github.com/workdeck/workdeck-api/internal/domain"
	"github.com/workdeck/workdeck-api/internal/service/workflow"
)

// ActorHandler handles identity and user directory requests.
type ActorHandler struct {
	actorService *workflow.ActorService
}

// NewActorHandler creates a new ActorHandler.
func NewActorHandler(actorService *workflow.ActorService) *ActorHandler {
	return &ActorHandler{actorService: actorService}
}

// WhoAmI handles GET /users/me: the caller's own identity and role.
func (h *ActorHandler) WhoAmI(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActorFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	identity := h.actorService.WhoAmI(actor)
	shared.RespondWithJSON(w, r, http.StatusOK, ActorResponse{
		ID:       identity.ID,
		Username: identity.Username,
		Role:     string(identity.Role),
	})
}

// Directory handles GET /users: the minimal user listing any authenticated
// actor may read, for populating assignee pickers.
func (h *ActorHandler) Directory(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActorFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	refs, err := h.actorService.Directory(r.Context(), actor)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	out := make([]ActorResponse, 0, len(refs))
	for _, ref := range refs {
		out = append(out, ActorResponse{ID: ref.ID, Username: ref.Username})
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

// Update handles PATCH /users/{id}. Managers only; currently limited to
// role changes.
func (h *ActorHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := requireActorAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateActorRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	var input workflow.UpdateActorInput
	if req.Role != nil {
		role := domain.Role(*req.Role)
		input.Role = &role
	}

	updated, err := h.actorService.Update(r.Context(), actor, id, input)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ActorResponse{
		ID:       updated.ID,
		Username: updated.Username,
		Role:     string(updated.Role),
	})
}
