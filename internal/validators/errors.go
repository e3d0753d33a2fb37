package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername    = errors.New("username is required")
	ErrUsernameTooLong  = errors.New("username is too long")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooLong  = errors.New("password is too long")
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidTodoID    = errors.New("invalid todo ID")
	ErrEmptyTask        = errors.New("task is required")
	ErrTaskTooLong      = errors.New("task is too long")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
