// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-todo-server/internal/app"
	"github.com/MKhiriev/go-todo-server/internal/logger"
	"github.com/MKhiriev/go-todo-server/internal/utils"
	"github.com/MKhiriev/go-todo-server/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	todos, err := h.services.TodoService.GetTodos(ctx, userID)
	if err != nil {
		writeError(w, r, fmt.Errorf("error getting todos: %w", err))
		return
	}

	if _, err = utils.WriteJSON(w, todos, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing todos response")
	}
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	var request models.CreateTodoRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	todo, err := h.services.TodoService.CreateTodo(ctx, models.Todo{UserID: userID, Task: request.Task})
	if err != nil {
		writeError(w, r, fmt.Errorf("error creating todo: %w", err))
		return
	}

	log.Debug().Int64("todo_id", todo.ID).Msg("todo created")
	if _, err = utils.WriteJSON(w, todo, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing todo response")
	}
}

// updateTodo applies a partial update. A request that sets the completion
// flag is acknowledged with "Todo completed", a task-only edit with
// "Todo updated".
func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	todoID, err := todoIDFromURL(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.UpdateTodoRequest
	if err = decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	update := models.TodoUpdate{
		ID:        todoID,
		UserID:    userID,
		Task:      request.Task,
		Completed: request.Completed,
	}
	if err = h.services.TodoService.UpdateTodo(ctx, update); err != nil {
		writeError(w, r, fmt.Errorf("error updating todo %d: %w", todoID, err))
		return
	}

	message := app.MsgTodoCompleted
	if request.Completed == nil {
		message = app.MsgTodoUpdated
	}
	utils.WriteMessage(w, message, http.StatusOK)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	todoID, err := todoIDFromURL(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.TodoService.DeleteTodo(ctx, userID, todoID); err != nil {
		writeError(w, r, fmt.Errorf("error deleting todo %d: %w", todoID, err))
		return
	}

	utils.WriteMessage(w, app.MsgTodoDeleted, http.StatusOK)
}

func todoIDFromURL(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTodoID, raw)
	}
	return id, nil
}
