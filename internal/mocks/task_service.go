package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/mkozyrev/weekplanner/internal/model"
)

// TaskService is a mock implementation of the handler TaskService interface.
type TaskService struct {
	mock.Mock
}

func (m *TaskService) Create(ctx context.Context, userID uuid.UUID, params model.CreateTaskParams) (model.Task, error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *TaskService) List(ctx context.Context, userID uuid.UUID, filter model.TaskFilter) ([]model.Task, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *TaskService) Get(ctx context.Context, userID, taskID uuid.UUID) (model.Task, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *TaskService) Update(ctx context.Context, userID, taskID uuid.UUID, params model.UpdateTaskParams) (model.Task, error) {
	args := m.Called(ctx, userID, taskID, params)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *TaskService) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	args := m.Called(ctx, userID, taskID)
	return args.Error(0)
}

func (m *TaskService) Toggle(ctx context.Context, userID, taskID uuid.UUID) (model.Task, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(model.Task), args.Error(1)
}
