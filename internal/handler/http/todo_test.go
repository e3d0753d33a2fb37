// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-todo-server/internal/service"
	"github.com/MKhiriev/go-todo-server/internal/store"
	"github.com/MKhiriev/go-todo-server/internal/validators"
	"github.com/MKhiriev/go-todo-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeMessage(t *testing.T, data []byte) string {
	t.Helper()

	var body models.MessageResponse
	require.NoError(t, json.Unmarshal(data, &body))
	return body.Message
}

func TestGetTodos(t *testing.T) {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	todo := &fakeTodoService{todos: []models.Todo{
		{ID: 1, UserID: testUserID, Task: models.DefaultTodoTask, CreatedAt: createdAt},
		{ID: 2, UserID: testUserID, Task: "water plants", Completed: true, CreatedAt: createdAt},
	}}
	router := newTestRouter(t, newFakeAuthService(), todo)

	rr := doRequest(router, http.MethodGet, "/todos", "", authHeader())

	require.Equal(t, http.StatusOK, rr.Code)
	var got []models.Todo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, todo.todos, got)
}

func TestGetTodos_EmptyListIsArray(t *testing.T) {
	router := newTestRouter(t, newFakeAuthService(), &fakeTodoService{})

	rr := doRequest(router, http.MethodGet, "/todos/", "", authHeader())

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetTodos_StorageFailure(t *testing.T) {
	todo := &fakeTodoService{err: fmt.Errorf("%w: disk I/O error", store.ErrExecutingQuery)}
	router := newTestRouter(t, newFakeAuthService(), todo)

	rr := doRequest(router, http.MethodGet, "/todos", "", authHeader())

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestCreateTodo(t *testing.T) {
	todo := &fakeTodoService{}
	var got models.Todo
	todo.createFn = func(in models.Todo) (models.Todo, error) {
		got = in
		in.ID = 42
		return in, nil
	}
	router := newTestRouter(t, newFakeAuthService(), todo)

	rr := doRequest(router, http.MethodPost, "/todos", `{"task":"buy milk"}`, authHeader())

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, models.Todo{UserID: testUserID, Task: "buy milk"}, got)

	var created models.Todo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "buy milk", created.Task)
	assert.False(t, created.Completed)
}

func TestCreateTodo_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "empty task",
			body:        `{"task":""}`,
			err:         fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyTask),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Task is required",
		},
		{
			name:        "task too long",
			body:        `{"task":"x"}`,
			err:         fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrTaskTooLong),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Task is too long",
		},
		{
			name:        "malformed body",
			body:        `{"task":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, newFakeAuthService(), &fakeTodoService{err: tt.err})

			rr := doRequest(router, http.MethodPost, "/todos", tt.body, authHeader())

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rr.Body.Bytes()))
		})
	}
}

func TestUpdateTodo(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		body        string
		err         error
		wantStatus  int
		wantMessage string
		wantCalls   int
	}{
		{
			name:        "complete",
			target:      "/todos/5",
			body:        `{"completed":true}`,
			wantStatus:  http.StatusOK,
			wantMessage: "Todo completed",
			wantCalls:   1,
		},
		{
			name:        "edit task only",
			target:      "/todos/5",
			body:        `{"task":"walk dog"}`,
			wantStatus:  http.StatusOK,
			wantMessage: "Todo updated",
			wantCalls:   1,
		},
		{
			name:        "unknown or foreign todo",
			target:      "/todos/99",
			body:        `{"completed":true}`,
			err:         store.ErrTodoNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Todo not found",
			wantCalls:   1,
		},
		{
			name:        "nothing to update",
			target:      "/todos/5",
			body:        `{}`,
			err:         fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrNoFieldsToUpdate),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Nothing to update",
			wantCalls:   1,
		},
		{
			name:        "non numeric id",
			target:      "/todos/abc",
			body:        `{"completed":true}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid todo id",
		},
		{
			name:        "zero id",
			target:      "/todos/0",
			body:        `{"completed":true}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid todo id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todo := &fakeTodoService{err: tt.err}
			router := newTestRouter(t, newFakeAuthService(), todo)

			rr := doRequest(router, http.MethodPut, tt.target, tt.body, authHeader())

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rr.Body.Bytes()))
			assert.Equal(t, tt.wantCalls, todo.callCount())
		})
	}
}

func TestUpdateTodo_BuildsScopedUpdate(t *testing.T) {
	todo := &fakeTodoService{}
	router := newTestRouter(t, newFakeAuthService(), todo)

	rr := doRequest(router, http.MethodPut, "/todos/5", `{"completed":false,"task":"again"}`, authHeader())

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(5), todo.lastUpdate.ID)
	assert.Equal(t, testUserID, todo.lastUpdate.UserID)
	require.NotNil(t, todo.lastUpdate.Completed)
	assert.False(t, *todo.lastUpdate.Completed)
	require.NotNil(t, todo.lastUpdate.Task)
	assert.Equal(t, "again", *todo.lastUpdate.Task)
}

func TestDeleteTodo(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "deleted", target: "/todos/8", wantStatus: http.StatusOK, wantMessage: "Todo deleted"},
		{name: "not found", target: "/todos/8", err: store.ErrTodoNotFound, wantStatus: http.StatusNotFound, wantMessage: "Todo not found"},
		{name: "negative id", target: "/todos/-1", wantStatus: http.StatusBadRequest, wantMessage: "Invalid todo id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todo := &fakeTodoService{err: tt.err}
			router := newTestRouter(t, newFakeAuthService(), todo)

			rr := doRequest(router, http.MethodDelete, tt.target, "", authHeader())

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rr.Body.Bytes()))
			if tt.wantStatus != http.StatusBadRequest {
				assert.Equal(t, int64(8), todo.lastTodoID)
			}
		})
	}
}

func TestTodoHandlers_WithoutUserInContext(t *testing.T) {
	h := NewHandler(newTestServices(), newTestServerConfig(t), nopLogger())

	rr := doRequest(http.HandlerFunc(h.getTodos), http.MethodGet, "/todos", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "No token provided", decodeMessage(t, rr.Body.Bytes()))
}
