package models

import "time"

// DefaultTodoTask is the task of the todo every new account starts with.
const DefaultTodoTask = "Hello :) Add your first todo!"

// Todo is a single entry of a user's todo list.
type Todo struct {
	// ID is the server-assigned identifier of the todo.
	ID int64 `json:"id"`

	// UserID is the owner of the todo. Todos are only ever visible to
	// their owner.
	UserID int64 `json:"user_id"`

	// Task is the free-form text of the todo.
	Task string `json:"task"`

	// Completed reports whether the todo has been done.
	Completed bool `json:"completed"`

	// CreatedAt is the timestamp when the todo was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Todo model.
func (t Todo) TableName() string {
	return "todos"
}

// TodoUpdate describes a partial update of a single todo.
// Only non-nil fields are written.
type TodoUpdate struct {
	// ID is the identifier of the todo to update. Required.
	ID int64 `json:"id"`

	// UserID is the owner of the todo. Required for data isolation.
	UserID int64 `json:"user_id"`

	// Task is the new text of the todo. If nil, the field is not updated.
	Task *string `json:"task,omitempty"`

	// Completed is the new completion state. If nil, the field is not updated.
	Completed *bool `json:"completed,omitempty"`
}
