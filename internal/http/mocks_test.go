package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"taskflow/internal/domain"
	"taskflow/internal/service"
)

type mockUserRepo struct {
	mu           sync.Mutex
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
	m.mu.Lock()
	defer m.mu.Unlock()
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
	m.mu.Lock()
	defer m.mu.Unlock()
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
	m.mu.Lock()
	id, ok := m.usersByEmail[email]
	err := m.err
	m.mu.Unlock()
	if err != nil {
		return domain.User{}, err
	}
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return m.GetByID(ctx, id)
}

func (m *mockUserRepo) remove(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user := m.usersByID[id]
	delete(m.usersByEmail, user.Email)
	delete(m.usersByID, id)
}

type mockTaskRepo struct {
	mu     sync.Mutex
	nextID int64
	tasks  map[int64]domain.Task
	clock  time.Time
	err    error
}

func newMockTaskRepo() *mockTaskRepo {
	return &mockTaskRepo{
		tasks: make(map[int64]domain.Task),
		clock: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (m *mockTaskRepo) Create(_ context.Context, task domain.Task) (domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return domain.Task{}, m.err
	}
	m.nextID++
	m.clock = m.clock.Add(time.Second)
	task.ID = m.nextID
	task.CreatedAt = m.clock
	m.tasks[task.ID] = task
	return task, nil
}

func (m *mockTaskRepo) ListByUserID(_ context.Context, userID int64) ([]domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.Task, 0)
	for id := int64(1); id <= m.nextID; id++ {
		if t, ok := m.tasks[id]; ok && t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTaskRepo) GetByID(_ context.Context, id int64) (domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return domain.Task{}, m.err
	}
	t, ok := m.tasks[id]
	if !ok {
		return domain.Task{}, pgx.ErrNoRows
	}
	return t, nil
}

func (m *mockTaskRepo) UpdateStatus(_ context.Context, id int64, status domain.TaskStatus) (domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return domain.Task{}, m.err
	}
	t, ok := m.tasks[id]
	if !ok {
		return domain.Task{}, pgx.ErrNoRows
	}
	t.Status = status
	m.tasks[id] = t
	return t, nil
}

func (m *mockTaskRepo) get(id int64) domain.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tasks[id]
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error {
	return m.err
}

const testSecret = "test-secret"

type testApp struct {
	router *gin.Engine
	users  *mockUserRepo
	tasks  *mockTaskRepo
	jwt    *service.JWTService
	pinger *mockPinger
}

func newTestApp(t *testing.T, secureCookie bool) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := newMockUserRepo()
	tasks := newMockTaskRepo()
	pinger := &mockPinger{}
	logger := zap.NewNop()
	jwtSvc := service.NewJWTService(testSecret)
	guard := service.NewAuthGuard(jwtSvc, users)
	userSvc := service.NewUserService(logger, users, service.NewBcryptHasher(bcrypt.MinCost))
	taskSvc := service.NewTaskService(tasks)

	router := NewRouter(
		logger,
		guard,
		NewUserHandler(logger, userSvc, jwtSvc, secureCookie),
		NewTaskHandler(logger, taskSvc),
		NewHealthHandler(logger, pinger),
	)
	return &testApp{router: router, users: users, tasks: tasks, jwt: jwtSvc, pinger: pinger}
}

// signupAndLogin registra un usuario y devuelve su cookie de sesion.
func (a *testApp) signupAndLogin(t *testing.T, email, password string) *http.Cookie {
	t.Helper()
	rec := performRequest(a.router, http.MethodPost, "/api/auth/signup", map[string]string{
		"name":     "Test",
		"email":    email,
		"password": password,
	}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = performRequest(a.router, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	cookie := sessionCookie(rec)
	if cookie == nil {
		t.Fatalf("login: expected session cookie")
	}
	return cookie
}

func performRequest(r http.Handler, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	return nil
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
}

func performRequestWithBearer(app *testApp, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	return rec
}

func performRequestWithHeader(app *testApp, path, key, value string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(key, value)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	return rec
}
