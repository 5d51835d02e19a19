package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/mkozyrev/weekplanner/internal/model"
)

// TaskStore is a mock implementation of model.TaskStore.
type TaskStore struct {
	mock.Mock
}

func (m *TaskStore) Create(ctx context.Context, task model.Task) (model.Task, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *TaskStore) GetByID(ctx context.Context, id, ownerID uuid.UUID) (model.Task, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *TaskStore) GetByOwner(ctx context.Context, ownerID uuid.UUID, filter model.TaskFilter) ([]model.Task, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *TaskStore) Update(ctx context.Context, task model.Task) (model.Task, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *TaskStore) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}
