package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mkozyrev/weekplanner/internal/apierr"
	"github.com/mkozyrev/weekplanner/internal/mocks"
	"github.com/mkozyrev/weekplanner/internal/model"
	"github.com/mkozyrev/weekplanner/internal/service"
	"github.com/mkozyrev/weekplanner/internal/testutil"
)

func TestTask_Create_Defaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	userID := uuid.New()

	taskStore := &mocks.TaskStore{}
	taskStore.On("Create", mock.Anything, mock.MatchedBy(func(task model.Task) bool {
		return task.OwnerID == userID &&
			task.Title == "Buy milk" &&
			task.Day == model.DaySomeday &&
			task.Status == model.StatusPending &&
			task.Priority == model.PriorityMedium &&
			!task.Completed
	})).Return(model.Task{ID: uuid.New(), OwnerID: userID, Title: "Buy milk"}, nil)

	s := service.NewTask(taskStore, testutil.MakeNoopLogger())

	_, err := s.Create(ctx, userID, model.CreateTaskParams{Title: "  Buy milk  "})
	require.NoError(t, err)
	taskStore.AssertExpectations(t)
}

func TestTask_Create_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params model.CreateTaskParams
	}{
		{
			name:   "empty title",
			params: model.CreateTaskParams{Title: ""},
		},
		{
			name:   "whitespace title",
			params: model.CreateTaskParams{Title: "   "},
		},
		{
			name:   "title too long",
			params: model.CreateTaskParams{Title: strings.Repeat("a", 201)},
		},
		{
			name:   "unknown day",
			params: model.CreateTaskParams{Title: "Buy milk", Day: "FUNDAY"},
		},
		{
			name:   "unknown status",
			params: model.CreateTaskParams{Title: "Buy milk", Status: "DONE"},
		},
		{
			name:   "unknown priority",
			params: model.CreateTaskParams{Title: "Buy milk", Priority: "URGENT"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := service.NewTask(&mocks.TaskStore{}, testutil.MakeNoopLogger())

			_, err := s.Create(context.Background(), uuid.New(), tt.params)
			require.Error(t, err)

			var apiErr *apierr.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, apierr.CodeValidationError, apiErr.Code)
		})
	}
}

func TestTask_Get_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	userID := uuid.New()
	taskID := uuid.New()

	// The store already collapses "missing" and "not owned"; the service
	// maps both to the same API error.
	taskStore := &mocks.TaskStore{}
	taskStore.On("GetByID", mock.Anything, taskID, userID).Return(model.Task{}, model.ErrNotFound)

	s := service.NewTask(taskStore, testutil.MakeNoopLogger())

	_, err := s.Get(ctx, userID, taskID)
	require.Error(t, err)

	var apiErr *apierr.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierr.CodeTaskNotFound, apiErr.Code)
}

func TestTask_Get_ScopedToOwner(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	userID := uuid.New()
	taskID := uuid.New()

	taskStore := &mocks.TaskStore{}
	taskStore.On("GetByID", mock.Anything, taskID, userID).
		Return(model.Task{ID: taskID, OwnerID: userID, Title: "Mine"}, nil)

	s := service.NewTask(taskStore, testutil.MakeNoopLogger())

	task, err := s.Get(ctx, userID, taskID)
	require.NoError(t, err)
	assert.Equal(t, userID, task.OwnerID)
	taskStore.AssertExpectations(t)
}

func TestTask_Update_Partial(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	userID := uuid.New()
	taskID := uuid.New()

	stored := model.Task{
		ID:       taskID,
		OwnerID:  userID,
		Title:    "Old title",
		Day:      model.DayMonday,
		Status:   model.StatusPending,
		Priority: model.PriorityMedium,
	}

	taskStore := &mocks.TaskStore{}
	taskStore.On("GetByID", mock.Anything, taskID, userID).Return(stored, nil)
	taskStore.On("Update", mock.Anything, mock.MatchedBy(func(task model.Task) bool {
		return task.Title == "New title" &&
			task.Day == model.DayMonday &&
			task.Priority == model.PriorityHigh
	})).Return(stored, nil)

	s := service.NewTask(taskStore, testutil.MakeNoopLogger())

	newTitle := "New title"
	priority := model.PriorityHigh
	_, err := s.Update(ctx, userID, taskID, model.UpdateTaskParams{
		Title:    &newTitle,
		Priority: &priority,
	})
	require.NoError(t, err)
	taskStore.AssertExpectations(t)
}

func TestTask_Update_StatusSyncsCompleted(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	userID := uuid.New()
	taskID := uuid.New()

	stored := model.Task{
		ID:      taskID,
		OwnerID: userID,
		Title:   "Buy milk",
		Status:  model.StatusPending,
	}

	taskStore := &mocks.TaskStore{}
	taskStore.On("GetByID", mock.Anything, taskID, userID).Return(stored, nil)
	taskStore.On("Update", mock.Anything, mock.MatchedBy(func(task model.Task) bool {
		return task.Status == model.StatusCompleted && task.Completed
	})).Return(model.Task{ID: taskID, Status: model.StatusCompleted, Completed: true}, nil)

	s := service.NewTask(taskStore, testutil.MakeNoopLogger())

	status := model.StatusCompleted
	task, err := s.Update(ctx, userID, taskID, model.UpdateTaskParams{Status: &status})
	require.NoError(t, err)
	assert.True(t, task.Completed)
	taskStore.AssertExpectations(t)
}

func TestTask_Update_TitleValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	userID := uuid.New()
	taskID := uuid.New()

	taskStore := &mocks.TaskStore{}
	taskStore.On("GetByID", mock.Anything, taskID, userID).
		Return(model.Task{ID: taskID, OwnerID: userID, Title: "Old"}, nil)

	s := service.NewTask(taskStore, testutil.MakeNoopLogger())

	empty := "  "
	_, err := s.Update(ctx, userID, taskID, model.UpdateTaskParams{Title: &empty})
	require.Error(t, err)

	var apiErr *apierr.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierr.CodeValidationError, apiErr.Code)
}

func TestTask_Toggle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	userID := uuid.New()
	taskID := uuid.New()

	stored := model.Task{
		ID:        taskID,
		OwnerID:   userID,
		Title:     "Buy milk",
		Status:    model.StatusPending,
		Completed: false,
	}

	taskStore := &mocks.TaskStore{}
	taskStore.On("GetByID", mock.Anything, taskID, userID).Return(stored, nil)
	taskStore.On("Update", mock.Anything, mock.MatchedBy(func(task model.Task) bool {
		return task.Completed && task.Status == model.StatusCompleted
	})).Return(model.Task{ID: taskID, Completed: true, Status: model.StatusCompleted}, nil)

	s := service.NewTask(taskStore, testutil.MakeNoopLogger())

	task, err := s.Toggle(ctx, userID, taskID)
	require.NoError(t, err)
	assert.True(t, task.Completed)
	assert.Equal(t, model.StatusCompleted, task.Status)
}

func TestTask_Toggle_BackToPending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	userID := uuid.New()
	taskID := uuid.New()

	stored := model.Task{
		ID:        taskID,
		OwnerID:   userID,
		Title:     "Buy milk",
		Status:    model.StatusCompleted,
		Completed: true,
	}

	taskStore := &mocks.TaskStore{}
	taskStore.On("GetByID", mock.Anything, taskID, userID).Return(stored, nil)
	taskStore.On("Update", mock.Anything, mock.MatchedBy(func(task model.Task) bool {
		return !task.Completed && task.Status == model.StatusPending
	})).Return(model.Task{ID: taskID, Completed: false, Status: model.StatusPending}, nil)

	s := service.NewTask(taskStore, testutil.MakeNoopLogger())

	task, err := s.Toggle(ctx, userID, taskID)
	require.NoError(t, err)
	assert.False(t, task.Completed)
}

func TestTask_Delete_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	userID := uuid.New()
	taskID := uuid.New()

	taskStore := &mocks.TaskStore{}
	taskStore.On("Delete", mock.Anything, taskID, userID).Return(model.ErrNotFound)

	s := service.NewTask(taskStore, testutil.MakeNoopLogger())

	err := s.Delete(ctx, userID, taskID)
	require.Error(t, err)

	var apiErr *apierr.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierr.CodeTaskNotFound, apiErr.Code)
}

func TestTask_List_Filter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	userID := uuid.New()

	day := model.DayMonday
	taskStore := &mocks.TaskStore{}
	taskStore.On("GetByOwner", mock.Anything, userID, model.TaskFilter{Day: &day}).
		Return([]model.Task{{Title: "Monday task"}}, nil)

	s := service.NewTask(taskStore, testutil.MakeNoopLogger())

	tasks, err := s.List(ctx, userID, model.TaskFilter{Day: &day})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
}

func TestTask_List_UnknownDay(t *testing.T) {
	t.Parallel()

	day := model.Day("FUNDAY")
	s := service.NewTask(&mocks.TaskStore{}, testutil.MakeNoopLogger())

	_, err := s.List(context.Background(), uuid.New(), model.TaskFilter{Day: &day})
	require.Error(t, err)

	var apiErr *apierr.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierr.CodeValidationError, apiErr.Code)
}
