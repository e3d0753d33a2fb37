package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-todo-server/internal/logger"
	"github.com/MKhiriev/go-todo-server/models"
)

// todoRepository is the SQL implementation of [TodoRepository] over the
// "todos" table. Every statement filters by user_id.
type todoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTodoRepository constructs a [TodoRepository] backed by the provided
// database connection and logger.
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTodo inserts todo and returns it with the generated id.
func (r *todoRepository) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if todo.CreatedAt.IsZero() {
		todo.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildInsertTodoQuery(r.db.builder, todo)
	if err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&todo.ID); err != nil {
		log.Err(err).
			Str("func", "*todoRepository.CreateTodo").
			Int64("user_id", todo.UserID).
			Msg("error inserting todo")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return todo, nil
}

// GetTodos returns all todos of userID ordered by id. A user without todos
// gets an empty, non-nil slice.
func (r *todoRepository) GetTodos(ctx context.Context, userID int64) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTodosQuery(r.db.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*todoRepository.GetTodos").
			Int64("user_id", userID).
			Msg("failed to execute query for getting todos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0, 16)
	for rows.Next() {
		var todo models.Todo
		if err = rows.Scan(&todo.ID, &todo.UserID, &todo.Task, &todo.Completed, &todo.CreatedAt); err != nil {
			log.Err(err).Str("func", "*todoRepository.GetTodos").Int64("user_id", userID).Msg("failed to scan todo")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		todos = append(todos, todo)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*todoRepository.GetTodos").Int64("user_id", userID).Msg("error iterating todos")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return todos, nil
}

// UpdateTodo writes the non-nil fields of update. [ErrTodoNotFound] is
// returned when no row of update.UserID has update.ID.
func (r *todoRepository) UpdateTodo(ctx context.Context, update models.TodoUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTodoQuery(r.db.builder, update)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, log, "*todoRepository.UpdateTodo", update.UserID, update.ID, query, args)
}

// DeleteTodo removes the todo todoID of userID. [ErrTodoNotFound] is
// returned when there is no such row.
func (r *todoRepository) DeleteTodo(ctx context.Context, userID, todoID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTodoQuery(r.db.builder, userID, todoID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, log, "*todoRepository.DeleteTodo", userID, todoID, query, args)
}

func (r *todoRepository) execAffectingOne(ctx context.Context, log *logger.Logger, fn string, userID, todoID int64, query string, args []any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Int64("user_id", userID).Int64("todo_id", todoID).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTodoNotFound
	}

	return nil
}
