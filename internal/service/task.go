package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mkozyrev/weekplanner/internal/apierr"
	"github.com/mkozyrev/weekplanner/internal/logger"
	"github.com/mkozyrev/weekplanner/internal/model"
)

const maxTitleLength = 200

// Task implements owner-scoped task operations. Every store call carries
// the caller's user id; a task owned by someone else is indistinguishable
// from a missing one.
type Task struct {
	taskStore model.TaskStore
	logger    *logger.Logger
}

// NewTask creates a new Task service.
func NewTask(taskStore model.TaskStore, logger *logger.Logger) *Task {
	return &Task{
		taskStore: taskStore,
		logger:    logger,
	}
}

// Create validates and stores a new task for the user. Unset day, status
// and priority default to SOMEDAY, PENDING and MEDIUM.
func (s *Task) Create(ctx context.Context, userID uuid.UUID, params model.CreateTaskParams) (model.Task, error) {
	title := strings.TrimSpace(params.Title)
	if err := validateTitle(title); err != nil {
		return model.Task{}, err
	}

	day := params.Day
	if day == "" {
		day = model.DaySomeday
	}
	status := params.Status
	if status == "" {
		status = model.StatusPending
	}
	priority := params.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !day.Valid() || !status.Valid() || !priority.Valid() {
		return model.Task{}, apierr.NewErrValidation("unknown day, status or priority value")
	}

	now := time.Now()
	task := model.Task{
		ID:          uuid.New(),
		OwnerID:     userID,
		Title:       title,
		Description: strings.TrimSpace(params.Description),
		Day:         day,
		Status:      status,
		Priority:    priority,
		Position:    0,
		Completed:   status == model.StatusCompleted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	savedTask, err := s.taskStore.Create(ctx, task)
	if err != nil {
		s.logger.Error("Task service: failed to create task",
			"user_id", userID,
			"error", err.Error())
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("Task service: task created",
		"user_id", userID,
		"task_id", savedTask.ID)

	return savedTask, nil
}

// List returns the user's tasks, optionally filtered by day, status or
// completion, ordered by position then recency.
func (s *Task) List(ctx context.Context, userID uuid.UUID, filter model.TaskFilter) ([]model.Task, error) {
	if filter.Day != nil && !filter.Day.Valid() {
		return nil, apierr.NewErrValidation("unknown day value")
	}
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, apierr.NewErrValidation("unknown status value")
	}

	tasks, err := s.taskStore.GetByOwner(ctx, userID, filter)
	if err != nil {
		s.logger.Error("Task service: failed to list tasks",
			"user_id", userID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// Get returns a single task owned by the user.
func (s *Task) Get(ctx context.Context, userID, taskID uuid.UUID) (model.Task, error) {
	task, err := s.taskStore.GetByID(ctx, taskID, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Task{}, apierr.NewErrTaskNotFound()
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}

	return task, nil
}

// Update applies partial changes to a task owned by the user. The store
// re-applies the owner filter in the UPDATE itself, so an ownership change
// racing this call cannot produce a cross-owner write.
func (s *Task) Update(ctx context.Context, userID, taskID uuid.UUID, params model.UpdateTaskParams) (model.Task, error) {
	task, err := s.Get(ctx, userID, taskID)
	if err != nil {
		return model.Task{}, err
	}

	if params.Title != nil {
		title := strings.TrimSpace(*params.Title)
		if err := validateTitle(title); err != nil {
			return model.Task{}, err
		}
		task.Title = title
	}
	if params.Description != nil {
		task.Description = strings.TrimSpace(*params.Description)
	}
	if params.Day != nil {
		if !params.Day.Valid() {
			return model.Task{}, apierr.NewErrValidation("unknown day value")
		}
		task.Day = *params.Day
	}
	if params.Status != nil {
		if !params.Status.Valid() {
			return model.Task{}, apierr.NewErrValidation("unknown status value")
		}
		task.Status = *params.Status
	}
	if params.Priority != nil {
		if !params.Priority.Valid() {
			return model.Task{}, apierr.NewErrValidation("unknown priority value")
		}
		task.Priority = *params.Priority
	}
	if params.Position != nil {
		task.Position = *params.Position
	}
	if params.Completed != nil {
		task.Completed = *params.Completed
	} else if params.Status != nil {
		// A status change without an explicit completed flag keeps the
		// two in agreement.
		task.Completed = task.Status == model.StatusCompleted
	}
	task.UpdatedAt = time.Now()

	savedTask, err := s.taskStore.Update(ctx, task)
	if errors.Is(err, model.ErrNotFound) {
		return model.Task{}, apierr.NewErrTaskNotFound()
	}
	if err != nil {
		s.logger.Error("Task service: failed to update task",
			"user_id", userID,
			"task_id", taskID,
			"error", err.Error())
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	return savedTask, nil
}

// Delete removes a task owned by the user.
func (s *Task) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	err := s.taskStore.Delete(ctx, taskID, userID)
	if errors.Is(err, model.ErrNotFound) {
		return apierr.NewErrTaskNotFound()
	}
	if err != nil {
		s.logger.Error("Task service: failed to delete task",
			"user_id", userID,
			"task_id", taskID,
			"error", err.Error())
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Info("Task service: task deleted",
		"user_id", userID,
		"task_id", taskID)

	return nil
}

// Toggle flips the task's completed flag and keeps status in sync:
// completing a task sets COMPLETED, un-completing it resets to PENDING.
func (s *Task) Toggle(ctx context.Context, userID, taskID uuid.UUID) (model.Task, error) {
	task, err := s.Get(ctx, userID, taskID)
	if err != nil {
		return model.Task{}, err
	}

	task.Completed = !task.Completed
	if task.Completed {
		task.Status = model.StatusCompleted
	} else {
		task.Status = model.StatusPending
	}
	task.UpdatedAt = time.Now()

	savedTask, err := s.taskStore.Update(ctx, task)
	if errors.Is(err, model.ErrNotFound) {
		return model.Task{}, apierr.NewErrTaskNotFound()
	}
	if err != nil {
		s.logger.Error("Task service: failed to toggle task",
			"user_id", userID,
			"task_id", taskID,
			"error", err.Error())
		return model.Task{}, fmt.Errorf("failed to toggle task: %w", err)
	}

	return savedTask, nil
}

func validateTitle(title string) error {
	if title == "" {
		return apierr.NewErrValidation("title is required")
	}
	if len(title) > maxTitleLength {
		return apierr.NewErrValidation("title must be 200 characters or less")
	}
	return nil
}
