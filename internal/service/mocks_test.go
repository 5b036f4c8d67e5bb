package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"taskflow/internal/domain"
)

type mockUserRepo struct {
	nextID       int64
	usersByID    map[int64]domain.User
	usersByEmail map[string]int64
	err          error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		usersByID:    make(map[int64]domain.User),
		usersByEmail: make(map[string]int64),
	}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if m.err != nil {
		return domain.User{}, m.err
	}
	if _, ok := m.usersByEmail[user.Email]; ok {
		return domain.User{}, &pgconn.PgError{Code: "23505"}
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now().UTC()
	m.usersByID[user.ID] = user
	m.usersByEmail[user.Email] = user.ID
	return user, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (domain.User, error) {
	if m.err != nil {
		return domain.User{}, m.err
	}
	user, ok := m.usersByID[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	if m.err != nil {
		return domain.User{}, m.err
	}
	id, ok := m.usersByEmail[email]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return m.GetByID(ctx, id)
}

func (m *mockUserRepo) remove(id int64) {
	user := m.usersByID[id]
	delete(m.usersByEmail, user.Email)
	delete(m.usersByID, id)
}

type mockTaskRepo struct {
	nextID    int64
	tasks     map[int64]domain.Task
	clock     time.Time
	listErr   error
	updateErr error
	updates   int
}

func newMockTaskRepo() *mockTaskRepo {
	return &mockTaskRepo{
		tasks: make(map[int64]domain.Task),
		clock: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (m *mockTaskRepo) Create(_ context.Context, task domain.Task) (domain.Task, error) {
	m.nextID++
	m.clock = m.clock.Add(time.Minute)
	task.ID = m.nextID
	task.CreatedAt = m.clock
	m.tasks[task.ID] = task
	return task, nil
}

// ListByUserID devuelve en orden de insercion a proposito: el servicio ordena.
func (m *mockTaskRepo) ListByUserID(_ context.Context, userID int64) ([]domain.Task, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []domain.Task
	for id := int64(1); id <= m.nextID; id++ {
		if t, ok := m.tasks[id]; ok && t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTaskRepo) GetByID(_ context.Context, id int64) (domain.Task, error) {
	t, ok := m.tasks[id]
	if !ok {
		return domain.Task{}, pgx.ErrNoRows
	}
	return t, nil
}

func (m *mockTaskRepo) UpdateStatus(_ context.Context, id int64, status domain.TaskStatus) (domain.Task, error) {
	if m.updateErr != nil {
		return domain.Task{}, m.updateErr
	}
	t, ok := m.tasks[id]
	if !ok {
		return domain.Task{}, pgx.ErrNoRows
	}
	m.updates++
	t.Status = status
	m.tasks[id] = t
	return t, nil
}
