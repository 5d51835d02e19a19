package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TaskStore defines persistence operations for tasks. Every lookup and
// mutation is scoped to an owner: an id that exists but belongs to another
// user behaves exactly like a missing row.
type TaskStore interface {
	Create(ctx context.Context, task Task) (Task, error)
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (Task, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID, filter TaskFilter) ([]Task, error)
	Update(ctx context.Context, task Task) (Task, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

// Task represents a planned item placed on a day of the week or the backlog.
type Task struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Day         Day
	Status      Status
	Priority    Priority
	Position    int
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Day enumerates week days plus the unscheduled backlog.
type Day string

const (
	DayMonday    Day = "MONDAY"
	DayTuesday   Day = "TUESDAY"
	DayWednesday Day = "WEDNESDAY"
	DayThursday  Day = "THURSDAY"
	DayFriday    Day = "FRIDAY"
	DaySaturday  Day = "SATURDAY"
	DaySunday    Day = "SUNDAY"
	// DaySomeday is the backlog for tasks not scheduled to any week day.
	DaySomeday Day = "SOMEDAY"
)

// Valid reports whether d is one of the known day values.
func (d Day) Valid() bool {
	switch d {
	case DayMonday, DayTuesday, DayWednesday, DayThursday,
		DayFriday, DaySaturday, DaySunday, DaySomeday:
		return true
	}
	return false
}

// Status enumerates task progress states.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Priority enumerates task priorities.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Valid reports whether p is one of the known priority values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// TaskFilter narrows owner-scoped task listings. Nil fields are ignored.
type TaskFilter struct {
	Day       *Day
	Status    *Status
	Completed *bool
}

// CreateTaskParams contains parameters to create a task.
type CreateTaskParams struct {
	Title       string
	Description string
	Day         Day
	Status      Status
	Priority    Priority
}

// UpdateTaskParams contains optional task updates. Nil fields keep the
// stored value.
type UpdateTaskParams struct {
	Title       *string
	Description *string
	Day         *Day
	Status      *Status
	Priority    *Priority
	Position    *int
	Completed   *bool
}
