package service

import (
	"github.com/MKhiriev/go-todo-server/internal/config"
	"github.com/MKhiriev/go-todo-server/internal/logger"
	"github.com/MKhiriev/go-todo-server/internal/store"
)

// Services aggregates the business services used by the HTTP handler. Each
// service is wrapped by its validation decorator.
type Services struct {
	AuthService AuthService
	TodoService TodoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	authService := NewAuthService(storages.UserRepository, cfg, logger)
	todoService := NewTodoService(storages.TodoRepository, logger)

	return &Services{
		AuthService: NewAuthValidationService().Wrap(authService),
		TodoService: NewTodoValidationService().Wrap(todoService),
	}
}
