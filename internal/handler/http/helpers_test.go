package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-todo-server/internal/config"
	"github.com/MKhiriev/go-todo-server/internal/logger"
	"github.com/MKhiriev/go-todo-server/internal/service"
	"github.com/MKhiriev/go-todo-server/models"
	"github.com/stretchr/testify/require"
)

const (
	testValidToken = "valid-token"
	testUserID     = int64(7)
	testIndexHTML  = "<!doctype html><title>todo</title>"
	testAppJS      = "console.log('todo');"
)

// fakeAuthService answers ParseToken for testValidToken with testUserID and
// rejects everything else; the other methods are driven by the fn fields.
type fakeAuthService struct {
	mu    sync.Mutex
	calls map[string]int

	registerFn func(models.Credentials) (models.User, error)
	loginFn    func(models.Credentials) (models.User, error)
	tokenFn    func(models.User) (models.Token, error)
}

func newFakeAuthService() *fakeAuthService {
	return &fakeAuthService{calls: map[string]int{}}
}

func (f *fakeAuthService) record(method string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[method]++
}

func (f *fakeAuthService) count(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeAuthService) RegisterUser(_ context.Context, c models.Credentials) (models.User, error) {
	f.record("RegisterUser")
	if f.registerFn != nil {
		return f.registerFn(c)
	}
	return models.User{UserID: testUserID, Username: c.Username}, nil
}

func (f *fakeAuthService) Login(_ context.Context, c models.Credentials) (models.User, error) {
	f.record("Login")
	if f.loginFn != nil {
		return f.loginFn(c)
	}
	return models.User{UserID: testUserID, Username: c.Username}, nil
}

func (f *fakeAuthService) CreateToken(_ context.Context, u models.User) (models.Token, error) {
	f.record("CreateToken")
	if f.tokenFn != nil {
		return f.tokenFn(u)
	}
	return models.Token{SignedString: "signed-for-" + u.Username, UserID: u.UserID}, nil
}

func (f *fakeAuthService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	f.record("ParseToken")
	if tokenString == testValidToken {
		return models.Token{SignedString: tokenString, UserID: testUserID}, nil
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

// fakeTodoService counts every call that reaches the todo route group.
type fakeTodoService struct {
	mu    sync.Mutex
	calls int

	lastUserID int64
	lastUpdate models.TodoUpdate
	lastTodoID int64

	todos    []models.Todo
	createFn func(models.Todo) (models.Todo, error)
	err      error
}

func (f *fakeTodoService) record(userID int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastUserID = userID
}

func (f *fakeTodoService) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeTodoService) GetTodos(_ context.Context, userID int64) ([]models.Todo, error) {
	f.record(userID)
	if f.err != nil {
		return nil, f.err
	}
	if f.todos == nil {
		return []models.Todo{}, nil
	}
	return f.todos, nil
}

func (f *fakeTodoService) CreateTodo(_ context.Context, todo models.Todo) (models.Todo, error) {
	f.record(todo.UserID)
	if f.createFn != nil {
		return f.createFn(todo)
	}
	if f.err != nil {
		return models.Todo{}, f.err
	}
	todo.ID = 1
	return todo, nil
}

func (f *fakeTodoService) UpdateTodo(_ context.Context, update models.TodoUpdate) error {
	f.record(update.UserID)
	f.lastUpdate = update
	return f.err
}

func (f *fakeTodoService) DeleteTodo(_ context.Context, userID, todoID int64) error {
	f.record(userID)
	f.lastTodoID = todoID
	return f.err
}

// newPublicDir creates a public directory holding index.html, app.js and an
// empty sub directory.
func newPublicDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(testIndexHTML), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte(testAppJS), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "assets"), 0o700))

	return dir
}

func newTestServerConfig(t *testing.T) config.Server {
	t.Helper()

	return config.Server{
		PublicDir:    newPublicDir(t),
		MaxBodyBytes: 1 << 20,
	}
}

func newTestRouter(t *testing.T, auth *fakeAuthService, todo *fakeTodoService) http.Handler {
	t.Helper()

	h := NewHandler(&service.Services{AuthService: auth, TodoService: todo}, newTestServerConfig(t), logger.Nop())
	return h.Init()
}

func doRequest(router http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func authHeader() map[string]string {
	return map[string]string{"Authorization": "Bearer " + testValidToken}
}

func newTestServices() *service.Services {
	return &service.Services{AuthService: newFakeAuthService(), TodoService: &fakeTodoService{}}
}

func nopLogger() *logger.Logger {
	return logger.Nop()
}
