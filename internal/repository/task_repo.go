package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"taskflow/internal/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	ListByUserID(ctx context.Context, userID int64) ([]domain.Task, error)
	GetByID(ctx context.Context, id int64) (domain.Task, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) (domain.Task, error)
}

type PgTaskRepository struct {
	pool *pgxpool.Pool
}

func NewPgTaskRepository(pool *pgxpool.Pool) *PgTaskRepository {
	return &PgTaskRepository{pool: pool}
}

func (r *PgTaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	const query = `
		INSERT INTO tasks (title, status, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query,
		task.Title,
		string(task.Status),
		task.UserID,
	).Scan(&task.ID, &task.CreatedAt)
	if err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (r *PgTaskRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.Task, error) {
	const query = `
		SELECT id, title, status, user_id, created_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *PgTaskRepository) GetByID(ctx context.Context, id int64) (domain.Task, error) {
	const query = `
		SELECT id, title, status, user_id, created_at
		FROM tasks
		WHERE id = $1
	`
	return scanTask(r.pool.QueryRow(ctx, query, id))
}

// UpdateStatus solo toca la columna status; owner y titulo son inmutables aqui.
func (r *PgTaskRepository) UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) (domain.Task, error) {
	const query = `
		UPDATE tasks
		SET status = $2
		WHERE id = $1
		RETURNING id, title, status, user_id, created_at
	`
	return scanTask(r.pool.QueryRow(ctx, query, id, string(status)))
}

func scanTask(row pgx.Row) (domain.Task, error) {
	var (
		t      domain.Task
		status string
	)
	err := row.Scan(
		&t.ID,
		&t.Title,
		&status,
		&t.UserID,
		&t.CreatedAt,
	)
	if err != nil {
		return domain.Task{}, err
	}
	t.Status = domain.TaskStatus(status)
	if !t.Status.Valid() {
		return domain.Task{}, fmt.Errorf("task %d: unknown status %q", t.ID, status)
	}
	return t, nil
}
