// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-todo-server/models"
)

// Field name constants used to restrict validation of todo models to a
// subset of fields.
const (
	// FieldID targets the server-assigned todo identifier.
	FieldID = "id"

	// FieldUserID targets the owner identifier of a todo.
	FieldUserID = "user_id"

	// FieldTask targets the text of a todo. On a models.TodoUpdate it is
	// only checked when a new task is given.
	FieldTask = "task"

	// FieldUpdateFields requires a models.TodoUpdate to change at least
	// one field.
	FieldUpdateFields = "update_fields"
)

// MaxTaskLength is the longest accepted task, in runes.
const MaxTaskLength = 1000

// TodoValidator implements [Validator] for models.Todo and
// models.TodoUpdate, in value and pointer form.
type TodoValidator struct{}

// NewTodoValidator constructs a new TodoValidator and returns it as the
// Validator interface.
func NewTodoValidator() Validator {
	return &TodoValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Default fields:
//   - models.Todo: user_id, task
//   - models.TodoUpdate: id, user_id, update_fields, task
//
// Returns ErrUnsupportedType for any other type.
func (v *TodoValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Todo:
		return v.validateTodo(value, fields...)
	case *models.Todo:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateTodo(*value, fields...)
	case models.TodoUpdate:
		return v.validateTodoUpdate(value, fields...)
	case *models.TodoUpdate:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateTodoUpdate(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *TodoValidator) validateTodo(todo models.Todo, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTask}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if todo.ID <= 0 {
				return ErrInvalidTodoID
			}
		case FieldUserID:
			if todo.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldTask:
			if err := validateTask(todo.Task); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TodoValidator) validateTodoUpdate(update models.TodoUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldUpdateFields, FieldTask}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if update.ID <= 0 {
				return ErrInvalidTodoID
			}
		case FieldUserID:
			if update.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldUpdateFields:
			if update.Task == nil && update.Completed == nil {
				return ErrNoFieldsToUpdate
			}
		case FieldTask:
			if update.Task != nil {
				if err := validateTask(*update.Task); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateTask(task string) error {
	if strings.TrimSpace(task) == "" {
		return ErrEmptyTask
	}
	if utf8.RuneCountInString(task) > MaxTaskLength {
		return ErrTaskTooLong
	}

	return nil
}
