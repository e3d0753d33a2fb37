package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-todo-server/internal/logger"
	"github.com/MKhiriev/go-todo-server/internal/store"
	"github.com/MKhiriev/go-todo-server/models"
)

type todoService struct {
	todoRepository store.TodoRepository

	logger *logger.Logger
}

func NewTodoService(todoRepository store.TodoRepository, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		logger:         logger,
	}
}

func (s *todoService) GetTodos(ctx context.Context, userID int64) ([]models.Todo, error) {
	return s.todoRepository.GetTodos(ctx, userID)
}

// CreateTodo stores a new, not yet completed todo.
func (s *todoService) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	todo.ID = 0
	todo.Completed = false
	todo.CreatedAt = time.Time{}

	return s.todoRepository.CreateTodo(ctx, todo)
}

func (s *todoService) UpdateTodo(ctx context.Context, update models.TodoUpdate) error {
	return s.todoRepository.UpdateTodo(ctx, update)
}

func (s *todoService) DeleteTodo(ctx context.Context, userID, todoID int64) error {
	return s.todoRepository.DeleteTodo(ctx, userID, todoID)
}
