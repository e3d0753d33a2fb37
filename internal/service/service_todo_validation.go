package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-server/internal/validators"
	"github.com/MKhiriev/go-todo-server/models"
)

// TodoValidationService validates todo input and ownership identifiers
// before delegating to the wrapped TodoService.
type TodoValidationService struct {
	inner     TodoService
	validator validators.Validator
}

func NewTodoValidationService() TodoServiceWrapper {
	return &TodoValidationService{
		validator: validators.NewTodoValidator(),
	}
}

func (v *TodoValidationService) GetTodos(ctx context.Context, userID int64) ([]models.Todo, error) {
	if err := v.validator.Validate(ctx, models.Todo{UserID: userID}, validators.FieldUserID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.GetTodos(ctx, userID)
}

func (v *TodoValidationService) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	if err := v.validator.Validate(ctx, todo); err != nil {
		return models.Todo{}, fmt.Errorf("error during todo validation before saving: %w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateTodo(ctx, todo)
}

func (v *TodoValidationService) UpdateTodo(ctx context.Context, update models.TodoUpdate) error {
	if err := v.validator.Validate(ctx, update); err != nil {
		return fmt.Errorf("error during todo validation before update: %w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateTodo(ctx, update)
}

func (v *TodoValidationService) DeleteTodo(ctx context.Context, userID, todoID int64) error {
	todo := models.Todo{ID: todoID, UserID: userID}
	if err := v.validator.Validate(ctx, todo, validators.FieldID, validators.FieldUserID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeleteTodo(ctx, userID, todoID)
}

func (v *TodoValidationService) Wrap(wrapped TodoService) TodoService {
	v.inner = wrapped
	return v
}
