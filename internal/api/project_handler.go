package api

import (
	"net/http"

	"github.com/workdeck/workdeck-api/internal/api/shared"
	"github.com/workdeck/workdeck-api/internal/service/workflow"
)

// ProjectHandler handles project CRUD requests.
type ProjectHandler struct {
	projectService *workflow.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *workflow.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List handles GET /projects. Managers see the projects they own,
// employees the projects they are members of.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActorFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	projects, err := h.projectService.List(r.Context(), actor)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, newProjectResponse(p))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

// Get handles GET /projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := requireActorAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	project, err := h.projectService.Get(r.Context(), actor, id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newProjectResponse(project))
}

// Create handles POST /projects. Only managers may create projects; the
// project is owned by its creator.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActorFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateProjectRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	project, err := h.projectService.Create(r.Context(), actor, workflow.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		MemberIDs:   req.Members,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newProjectResponse(project))
}

// Update handles PATCH /projects/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := requireActorAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	project, err := h.projectService.Update(r.Context(), actor, id, workflow.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		MemberIDs:   req.Members,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newProjectResponse(project))
}

// Delete handles DELETE /projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := requireActorAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.projectService.Delete(r.Context(), actor, id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
