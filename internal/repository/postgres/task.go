package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mkozyrev/weekplanner/internal/model"
)

var _ model.TaskStore = (*TaskRepository)(nil)

type TaskRepository struct {
	db *Connection
}

func NewTaskRepository(db *Connection) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

func (r *TaskRepository) Create(ctx context.Context, task model.Task) (model.Task, error) {
	query := `INSERT INTO tasks (id, owner_id, title, description, day, status, priority, position, completed, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING id, owner_id, title, description, day, status, priority, position, completed, created_at, updated_at`

	var savedTask model.Task
	err := r.db.QueryRow(ctx, query,
		task.ID, task.OwnerID, task.Title, task.Description,
		string(task.Day), string(task.Status), string(task.Priority),
		task.Position, task.Completed, task.CreatedAt, task.UpdatedAt,
	).Scan(
		&savedTask.ID, &savedTask.OwnerID, &savedTask.Title, &savedTask.Description,
		&savedTask.Day, &savedTask.Status, &savedTask.Priority,
		&savedTask.Position, &savedTask.Completed, &savedTask.CreatedAt, &savedTask.UpdatedAt,
	)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return savedTask, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id, ownerID uuid.UUID) (model.Task, error) {
	query := `SELECT id, owner_id, title, description, day, status, priority, position, completed, created_at, updated_at
			  FROM tasks WHERE id = $1 AND owner_id = $2`

	var task model.Task
	err := r.db.QueryRow(ctx, query, id, ownerID).Scan(
		&task.ID, &task.OwnerID, &task.Title, &task.Description,
		&task.Day, &task.Status, &task.Priority,
		&task.Position, &task.Completed, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}

	return task, nil
}

func (r *TaskRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID, filter model.TaskFilter) ([]model.Task, error) {
	query := `SELECT id, owner_id, title, description, day, status, priority, position, completed, created_at, updated_at
			  FROM tasks WHERE owner_id = $1`
	args := []any{ownerID}

	if filter.Day != nil {
		args = append(args, string(*filter.Day))
		query += fmt.Sprintf(" AND day = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Completed != nil {
		args = append(args, *filter.Completed)
		query += fmt.Sprintf(" AND completed = $%d", len(args))
	}

	query += " ORDER BY position ASC, created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var task model.Task
		err := rows.Scan(
			&task.ID, &task.OwnerID, &task.Title, &task.Description,
			&task.Day, &task.Status, &task.Priority,
			&task.Position, &task.Completed, &task.CreatedAt, &task.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, task model.Task) (model.Task, error) {
	// Owner filter repeated here so an ownership mismatch racing the
	// service's read cannot write across owners.
	query := `UPDATE tasks
			  SET title = $3, description = $4, day = $5, status = $6, priority = $7,
			      position = $8, completed = $9, updated_at = $10
			  WHERE id = $1 AND owner_id = $2
			  RETURNING id, owner_id, title, description, day, status, priority, position, completed, created_at, updated_at`

	var savedTask model.Task
	err := r.db.QueryRow(ctx, query,
		task.ID, task.OwnerID, task.Title, task.Description,
		string(task.Day), string(task.Status), string(task.Priority),
		task.Position, task.Completed, task.UpdatedAt,
	).Scan(
		&savedTask.ID, &savedTask.OwnerID, &savedTask.Title, &savedTask.Description,
		&savedTask.Day, &savedTask.Status, &savedTask.Priority,
		&savedTask.Position, &savedTask.Completed, &savedTask.CreatedAt, &savedTask.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	return savedTask, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`
	cmd, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
