package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"

	"taskflow/internal/domain"
	"taskflow/internal/repository"
)

var (
	ErrInvalidTitle  = errors.New("title is required")
	ErrInvalidStatus = errors.New("invalid status")
	ErrTaskNotFound  = errors.New("task not found")
	ErrForbidden     = errors.New("forbidden")
)

// TaskService aplica ownership y las transiciones de estado de las tareas.
type TaskService struct {
	tasks repository.TaskRepository
}

func NewTaskService(tasks repository.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

// List devuelve solo las tareas del owner, de la mas nueva a la mas vieja.
func (s *TaskService) List(ctx context.Context, owner domain.Identity) ([]domain.Task, error) {
	tasks, err := s.tasks.ListByUserID(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	visible := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.UserID == owner.ID {
			visible = append(visible, t)
		}
	}
	slices.SortStableFunc(visible, func(a, b domain.Task) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})
	return visible, nil
}

// Create siempre arranca en Todo y con el owner del request.
func (s *TaskService) Create(ctx context.Context, owner domain.Identity, rawTitle string) (domain.Task, error) {
	title, ok := domain.NormalizeTitle(rawTitle)
	if !ok {
		return domain.Task{}, ErrInvalidTitle
	}

	task, err := s.tasks.Create(ctx, domain.Task{
		Title:  title,
		Status: domain.TaskStatusTodo,
		UserID: owner.ID,
	})
	if err != nil {
		return domain.Task{}, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// UpdateStatus valida el estado, luego existencia, luego ownership.
// Cualquier estado puede pasar a cualquier otro, incluido el mismo.
func (s *TaskService) UpdateStatus(ctx context.Context, requester domain.Identity, taskID int64, rawStatus string) (domain.Task, error) {
	status, ok := domain.ParseTaskStatus(rawStatus)
	if !ok {
		return domain.Task{}, ErrInvalidStatus
	}
	if taskID <= 0 {
		return domain.Task{}, ErrTaskNotFound
	}

	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Task{}, ErrTaskNotFound
		}
		return domain.Task{}, fmt.Errorf("get task: %w", err)
	}
	if task.UserID != requester.ID {
		return domain.Task{}, ErrForbidden
	}

	updated, err := s.tasks.UpdateStatus(ctx, task.ID, status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Task{}, ErrTaskNotFound
		}
		return domain.Task{}, fmt.Errorf("update task status: %w", err)
	}
	return updated, nil
}
