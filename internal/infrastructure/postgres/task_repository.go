package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jefftricks/shamba-api/internal/domain"
	"github.com/jefftricks/shamba-api/internal/domain/entity"
	"github.com/jefftricks/shamba-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

const taskColumns = `id, title, COALESCE(description, ''), task_type, priority, task_date,
	completed, COALESCE(assigned_to, ''), created_by, created_at, updated_at`

// TaskRepo implements TaskRepository over PostgreSQL.
type TaskRepo struct {
	q Querier
}

// NewTaskRepository builds the tasks adapter. Pass a pool or tx (Querier).
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

func (r *TaskRepo) Create(ctx context.Context, task *entity.Task) error {
	query := `
		INSERT INTO tasks (id, title, description, task_type, priority, task_date, completed, assigned_to, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		task.ID, task.Title, task.Description, task.TaskType, task.Priority,
		task.TaskDate, task.Completed, task.AssignedTo,
		task.CreatedBy, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *TaskRepo) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	task, err := scanTaskRow(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

func (r *TaskRepo) List(ctx context.Context) ([]*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY task_date`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Task, 0)
	for rows.Next() {
		task, err := scanTaskRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, task)
	}
	return list, rows.Err()
}

func (r *TaskRepo) Update(ctx context.Context, task *entity.Task) error {
	query := `
		UPDATE tasks SET title = $2, description = $3, task_type = $4, priority = $5,
			task_date = $6, completed = $7, assigned_to = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		task.ID, task.Title, task.Description, task.TaskType, task.Priority,
		task.TaskDate, task.Completed, task.AssignedTo, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanTaskRow(row pgx.Row) (*entity.Task, error) {
	var t entity.Task
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.TaskType, &t.Priority, &t.TaskDate,
		&t.Completed, &t.AssignedTo, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
