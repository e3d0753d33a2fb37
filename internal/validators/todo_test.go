// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-server/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr[T any](v T) *T { return &v }

func validTodo() models.Todo {
	return models.Todo{UserID: 1, Task: "buy milk"}
}

func validTodoUpdate() models.TodoUpdate {
	return models.TodoUpdate{ID: 3, UserID: 1, Completed: ptr(true)}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestTodoValidator_Dispatch(t *testing.T) {
	v := NewTodoValidator()
	ctx := context.Background()

	todo := validTodo()
	update := validTodoUpdate()

	assert.NoError(t, v.Validate(ctx, todo))
	assert.NoError(t, v.Validate(ctx, &todo))
	assert.NoError(t, v.Validate(ctx, update))
	assert.NoError(t, v.Validate(ctx, &update))

	assert.ErrorIs(t, v.Validate(ctx, "todo"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, (*models.Todo)(nil)), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, (*models.TodoUpdate)(nil)), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{}), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// Todo
// ---------------------------------------------------------------------------

func TestTodoValidator_Todo(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Todo)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Todo) {}},
		{name: "empty task", mutate: func(td *models.Todo) { td.Task = "" }, wantErr: ErrEmptyTask},
		{name: "blank task", mutate: func(td *models.Todo) { td.Task = " \t\n" }, wantErr: ErrEmptyTask},
		{name: "task too long", mutate: func(td *models.Todo) { td.Task = strings.Repeat("a", MaxTaskLength+1) }, wantErr: ErrTaskTooLong},
		{name: "task at limit in runes", mutate: func(td *models.Todo) { td.Task = strings.Repeat("я", MaxTaskLength) }},
		{name: "no user", mutate: func(td *models.Todo) { td.UserID = 0 }, wantErr: ErrInvalidUserID},
		{name: "id checked only on request", mutate: func(td *models.Todo) { td.ID = 0 }},
		{name: "id requested", mutate: func(td *models.Todo) { td.ID = 0 }, fields: []string{FieldID}, wantErr: ErrInvalidTodoID},
		{name: "task only scope ignores user", mutate: func(td *models.Todo) { td.UserID = 0 }, fields: []string{FieldTask}},
		{name: "unknown field", mutate: func(*models.Todo) {}, fields: []string{"deadline"}, wantErr: ErrUnknownField},
	}

	v := NewTodoValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todo := validTodo()
			tt.mutate(&todo)

			err := v.Validate(context.Background(), todo, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// TodoUpdate
// ---------------------------------------------------------------------------

func TestTodoValidator_TodoUpdate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.TodoUpdate)
		wantErr error
	}{
		{name: "completed only", mutate: func(*models.TodoUpdate) {}},
		{name: "task only", mutate: func(u *models.TodoUpdate) { u.Completed = nil; u.Task = ptr("new text") }},
		{name: "no id", mutate: func(u *models.TodoUpdate) { u.ID = 0 }, wantErr: ErrInvalidTodoID},
		{name: "negative id", mutate: func(u *models.TodoUpdate) { u.ID = -4 }, wantErr: ErrInvalidTodoID},
		{name: "no user", mutate: func(u *models.TodoUpdate) { u.UserID = 0 }, wantErr: ErrInvalidUserID},
		{name: "nothing to update", mutate: func(u *models.TodoUpdate) { u.Completed = nil }, wantErr: ErrNoFieldsToUpdate},
		{name: "blank new task", mutate: func(u *models.TodoUpdate) { u.Task = ptr("  ") }, wantErr: ErrEmptyTask},
	}

	v := NewTodoValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			update := validTodoUpdate()
			tt.mutate(&update)

			err := v.Validate(context.Background(), update)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
