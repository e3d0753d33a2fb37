package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-todo-server/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and, when firstTask is not empty, a first todo
	// for the new account, both in one transaction. The returned user has
	// its id and creation time set.
	CreateUser(ctx context.Context, user models.User, firstTask string) (models.User, error)

	// FindUserByUsername returns the user with the given username or
	// [ErrUserNotFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// TodoRepository persists todos. Every method is scoped to a single user.
type TodoRepository interface {
	CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)
	GetTodos(ctx context.Context, userID int64) ([]models.Todo, error)
	UpdateTodo(ctx context.Context, update models.TodoUpdate) error
	DeleteTodo(ctx context.Context, userID, todoID int64) error
}

// ErrorClassificator hides driver-specific error values from the
// repositories.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
