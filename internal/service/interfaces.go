package service

import (
	"context"

	"github.com/MKhiriev/go-todo-server/models"
)

// AuthService registers and authenticates users and issues the tokens the
// todo routes require.
type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TodoService manages the todo list of a single authenticated user.
type TodoService interface {
	GetTodos(ctx context.Context, userID int64) ([]models.Todo, error)
	CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)
	UpdateTodo(ctx context.Context, update models.TodoUpdate) error
	DeleteTodo(ctx context.Context, userID, todoID int64) error
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// logging or validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}

// TodoServiceWrapper defines middleware composition for TodoService.
type TodoServiceWrapper interface {
	Wrap(TodoService) TodoService // returns a decorated TodoService applying additional behavior
}
