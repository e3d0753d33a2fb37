package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-todo-server/models"
)

var (
	userColumns = []string{"id", "username", "password", "created_at"}
	todoColumns = []string{"id", "user_id", "task", "completed", "created_at"}
)

// Inserts only ask for the generated id back: created_at is supplied by the
// caller so the value is identical across drivers.

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns("username", "password", "created_at").
		Values(user.Username, user.Password, user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildInsertTodoQuery(b sq.StatementBuilderType, todo models.Todo) (string, []any, error) {
	return b.Insert(todo.TableName()).
		Columns("user_id", "task", "completed", "created_at").
		Values(todo.UserID, todo.Task, todo.Completed, todo.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectTodosQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(todoColumns...).
		From(models.Todo{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
}

// buildUpdateTodoQuery sets only the non-nil fields of update. It fails when
// there is nothing to set.
func buildUpdateTodoQuery(b sq.StatementBuilderType, update models.TodoUpdate) (string, []any, error) {
	set := make(map[string]any, 2)
	if update.Task != nil {
		set["task"] = *update.Task
	}
	if update.Completed != nil {
		set["completed"] = *update.Completed
	}

	return b.Update(models.Todo{}.TableName()).
		SetMap(set).
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		ToSql()
}

func buildDeleteTodoQuery(b sq.StatementBuilderType, userID, todoID int64) (string, []any, error) {
	return b.Delete(models.Todo{}.TableName()).
		Where(sq.Eq{"id": todoID, "user_id": userID}).
		ToSql()
}
