package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/workdeck/workdeck-api/internal/api/shared"
	"github.com/workdeck/workdeck-api/internal/domain"
	"github.com/workdeck/workdeck-api/internal/service/workflow"
	"github.com/workdeck/workdeck-api/internal/store"
)

// TaskHandler handles task CRUD and the request/approve/reject workflow.
type TaskHandler struct {
	taskService *workflow.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *workflow.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List handles GET /tasks. Managers see the tasks they assigned, employees
// the tasks assigned to them. Supports project_id, priority, status and
// assigned_to query filters.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActorFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	filter, err := taskFilterFromQuery(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	views, err := h.taskService.List(r.Context(), actor, filter)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newTaskResponses(views))
}

// Get handles GET /tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := requireActorAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	view, err := h.taskService.Get(r.Context(), actor, id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newTaskResponse(*view))
}

// Create handles POST /tasks. Managers only; the creator becomes the
// assigning manager.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActorFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	eta, err := parseETA(req.ETA)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	view, err := h.taskService.Create(r.Context(), actor, workflow.CreateTaskInput{
		ProjectID:   req.ProjectID,
		Name:        req.Name,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Priority:    domain.TaskPriority(req.Priority),
		Status:      domain.TaskStatus(req.Status),
		ETA:         eta,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newTaskResponse(*view))
}

// Update handles PATCH /tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := requireActorAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	input, ok := h.decodeUpdate(w, r)
	if !ok {
		return
	}

	view, err := h.taskService.Update(r.Context(), actor, id, input)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newTaskResponse(*view))
}

// Delete handles DELETE /tasks/{id}. Only the manager who assigned the
// task may delete it.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := requireActorAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.taskService.Delete(r.Context(), actor, id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Request handles POST /tasks/request. Employees only: the task is created
// pending, assigned to the requester and attributed to the project owner,
// whatever the payload says.
func (h *TaskHandler) Request(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActorFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req RequestTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	eta, err := parseETA(req.ETA)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	view, err := h.taskService.Request(r.Context(), actor, workflow.RequestTaskInput{
		ProjectID:   req.ProjectID,
		Name:        req.Name,
		Description: req.Description,
		Priority:    domain.TaskPriority(req.Priority),
		ETA:         eta,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newTaskResponse(*view))
}

// Approve handles POST /tasks/{id}/approve. Managers only: the task moves
// to todo and the approver becomes the assigning manager.
func (h *TaskHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.taskService.Approve)
}

// Reject handles POST /tasks/{id}/reject. Managers only: the task moves to
// rejected; the original assigner is kept.
func (h *TaskHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.taskService.Reject)
}

// resolveFunc is the shared shape of TaskService.Approve and Reject.
type resolveFunc func(
	ctx context.Context,
	actor *domain.Actor,
	id uuid.UUID,
	input workflow.UpdateTaskInput,
) (*workflow.TaskView, error)

func (h *TaskHandler) resolve(w http.ResponseWriter, r *http.Request, fn resolveFunc) {
	actor, id, ok := requireActorAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	input, ok := h.decodeUpdate(w, r)
	if !ok {
		return
	}

	view, err := fn(r.Context(), actor, id, input)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newTaskResponse(*view))
}

// decodeUpdate decodes and converts the shared partial-update payload,
// writing the error response itself on failure.
func (h *TaskHandler) decodeUpdate(w http.ResponseWriter, r *http.Request) (workflow.UpdateTaskInput, bool) {
	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return workflow.UpdateTaskInput{}, false
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return workflow.UpdateTaskInput{}, false
	}

	eta, err := parseETA(req.ETA)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return workflow.UpdateTaskInput{}, false
	}

	input := workflow.UpdateTaskInput{
		Name:        req.Name,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		ETA:         eta,
	}
	if req.Priority != nil {
		p := domain.TaskPriority(*req.Priority)
		input.Priority = &p
	}
	if req.Status != nil {
		s := domain.TaskStatus(*req.Status)
		input.Status = &s
	}
	return input, true
}

// taskFilterFromQuery builds the store filter from the list query string.
func taskFilterFromQuery(r *http.Request) (store.TaskFilter, error) {
	var filter store.TaskFilter
	q := r.URL.Query()

	if raw := q.Get("project_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, domain.ErrInvalidID
		}
		filter.ProjectID = id
	}
	if raw := q.Get("priority"); raw != "" {
		p, err := domain.ParseTaskPriority(raw)
		if err != nil {
			return filter, err
		}
		filter.Priority = p
	}
	if raw := q.Get("status"); raw != "" {
		s, err := domain.ParseTaskStatus(raw)
		if err != nil {
			return filter, err
		}
		filter.Status = s
	}
	filter.AssignedUsername = q.Get("assigned_to")

	return filter, nil
}
