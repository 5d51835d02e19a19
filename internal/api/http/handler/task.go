package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mkozyrev/weekplanner/internal/apierr"
	"github.com/mkozyrev/weekplanner/internal/logger"
	"github.com/mkozyrev/weekplanner/internal/model"
)

// TaskService defines owner-scoped task operations.
type TaskService interface {
	Create(ctx context.Context, userID uuid.UUID, params model.CreateTaskParams) (model.Task, error)
	List(ctx context.Context, userID uuid.UUID, filter model.TaskFilter) ([]model.Task, error)
	Get(ctx context.Context, userID, taskID uuid.UUID) (model.Task, error)
	Update(ctx context.Context, userID, taskID uuid.UUID, params model.UpdateTaskParams) (model.Task, error)
	Delete(ctx context.Context, userID, taskID uuid.UUID) error
	Toggle(ctx context.Context, userID, taskID uuid.UUID) (model.Task, error)
}

// Task handles HTTP endpoints for task management. All routes sit behind
// the authenticate middleware, so a missing identity is a server bug and
// surfaces as 401 rather than a panic.
type Task struct {
	taskService    TaskService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewTask creates a new Task handler.
func NewTask(taskService TaskService, contextManager model.ContextManager, logger *logger.Logger) *Task {
	return &Task{
		taskService:    taskService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Day         string `json:"day"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Day         *string `json:"day"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	Position    *int    `json:"position"`
	Completed   *bool   `json:"completed"`
}

type taskResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Day         string    `json:"day"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Position    int       `json:"position"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type taskListResponse struct {
	Tasks []taskResponse `json:"tasks"`
	Total int            `json:"total"`
}

func toTaskResponse(task model.Task) taskResponse {
	return taskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Day:         string(task.Day),
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		Position:    task.Position,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// List returns the caller's tasks, filtered by optional day, status and
// completed query parameters.
func (h *Task) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		WriteError(w, h.logger, apierr.NewErrMissingToken())
		return
	}

	filter := model.TaskFilter{}
	q := r.URL.Query()
	if v := q.Get("day"); v != "" {
		day := model.Day(v)
		filter.Day = &day
	}
	if v := q.Get("status"); v != "" {
		status := model.Status(v)
		filter.Status = &status
	}
	if v := q.Get("completed"); v != "" {
		completed := v == "true"
		filter.Completed = &completed
	}

	tasks, err := h.taskService.List(r.Context(), identity.UserID, filter)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	items := make([]taskResponse, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, toTaskResponse(task))
	}

	WriteData(w, http.StatusOK, taskListResponse{Tasks: items, Total: len(items)})
}

// Create stores a new task for the caller.
func (h *Task) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		WriteError(w, h.logger, apierr.NewErrMissingToken())
		return
	}

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, h.logger, apierr.NewErrValidation("invalid request body"))
		return
	}

	task, err := h.taskService.Create(r.Context(), identity.UserID, model.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Day:         model.Day(req.Day),
		Status:      model.Status(req.Status),
		Priority:    model.Priority(req.Priority),
	})
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	WriteMessage(w, http.StatusCreated, toTaskResponse(task), "task created")
}

// Get returns a single task owned by the caller.
func (h *Task) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		WriteError(w, h.logger, apierr.NewErrMissingToken())
		return
	}

	taskID, err := parseTaskID(r)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	task, err := h.taskService.Get(r.Context(), identity.UserID, taskID)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	WriteData(w, http.StatusOK, toTaskResponse(task))
}

// Update applies partial changes to a task owned by the caller.
func (h *Task) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		WriteError(w, h.logger, apierr.NewErrMissingToken())
		return
	}

	taskID, err := parseTaskID(r)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, h.logger, apierr.NewErrValidation("invalid request body"))
		return
	}

	params := model.UpdateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Position:    req.Position,
		Completed:   req.Completed,
	}
	if req.Day != nil {
		day := model.Day(*req.Day)
		params.Day = &day
	}
	if req.Status != nil {
		status := model.Status(*req.Status)
		params.Status = &status
	}
	if req.Priority != nil {
		priority := model.Priority(*req.Priority)
		params.Priority = &priority
	}

	task, err := h.taskService.Update(r.Context(), identity.UserID, taskID, params)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	WriteMessage(w, http.StatusOK, toTaskResponse(task), "task updated")
}

// Delete removes a task owned by the caller.
func (h *Task) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		WriteError(w, h.logger, apierr.NewErrMissingToken())
		return
	}

	taskID, err := parseTaskID(r)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	if err := h.taskService.Delete(r.Context(), identity.UserID, taskID); err != nil {
		WriteError(w, h.logger, err)
		return
	}

	WriteMessage(w, http.StatusOK, nil, "task deleted")
}

// Toggle flips the completed flag of a task owned by the caller.
func (h *Task) Toggle(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		WriteError(w, h.logger, apierr.NewErrMissingToken())
		return
	}

	taskID, err := parseTaskID(r)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	task, err := h.taskService.Toggle(r.Context(), identity.UserID, taskID)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	message := "task marked as incomplete"
	if task.Completed {
		message = "task marked as completed"
	}
	WriteMessage(w, http.StatusOK, toTaskResponse(task), message)
}

// parseTaskID reads the id route parameter. A malformed id cannot match
// any task, so it collapses into the same not-found outcome.
func parseTaskID(r *http.Request) (uuid.UUID, error) {
	taskID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, apierr.NewErrTaskNotFound()
	}
	return taskID, nil
}
