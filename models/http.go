package models

// TokenResponse is returned by the register and login endpoints.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse is the generic body for status-only replies and errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateTodoRequest is the body of POST /todos.
type CreateTodoRequest struct {
	Task string `json:"task"`
}

// UpdateTodoRequest is the body of PUT /todos/{id}.
// Omitted fields keep their stored value.
type UpdateTodoRequest struct {
	Task      *string `json:"task,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}
