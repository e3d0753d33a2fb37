package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-todo-server/internal/app"
	"github.com/MKhiriev/go-todo-server/internal/logger"
	"github.com/MKhiriev/go-todo-server/internal/service"
	"github.com/MKhiriev/go-todo-server/internal/store"
	"github.com/MKhiriev/go-todo-server/internal/utils"
	"github.com/MKhiriev/go-todo-server/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidTodoID:   http.StatusBadRequest,
	ErrInvalidJSON:     http.StatusBadRequest,
	ErrNoUserInContext: http.StatusUnauthorized,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrTodoNotFound:          http.StatusNotFound,
}

// errorMessages is checked in order; the first match supplies the body of
// the error response.
var errorMessages = []struct {
	err     error
	message string
}{
	{store.ErrUserNotFound, app.MsgUserNotFound},
	{service.ErrWrongPassword, app.MsgInvalidPassword},
	{store.ErrUsernameAlreadyExists, app.MsgUsernameAlreadyExists},
	{store.ErrTodoNotFound, app.MsgTodoNotFound},
	{ErrInvalidTodoID, app.MsgInvalidTodoID},
	{ErrInvalidJSON, app.MsgInvalidJSON},
	{ErrNoUserInContext, app.MsgNoTokenProvided},
	{validators.ErrEmptyUsername, app.MsgUsernameRequired},
	{validators.ErrUsernameTooLong, app.MsgUsernameTooLong},
	{validators.ErrEmptyPassword, app.MsgPasswordRequired},
	{validators.ErrPasswordTooLong, app.MsgPasswordTooLong},
	{validators.ErrEmptyTask, app.MsgTaskRequired},
	{validators.ErrTaskTooLong, app.MsgTaskTooLong},
	{validators.ErrNoFieldsToUpdate, app.MsgNothingToUpdate},
	{validators.ErrInvalidTodoID, app.MsgInvalidTodoID},
	{service.ErrInvalidDataProvided, app.MsgInvalidDataProvided},
}

// statusFromError maps err to an HTTP status. Failures no sentinel accounts
// for are reported as 503, the storage being the usual culprit.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusServiceUnavailable
}

func messageFromError(err error, status int) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}
	return http.StatusText(status)
}

// writeError logs err on the request logger and answers with the mapped
// status and a {"message": ...} body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, messageFromError(err, status), status)
}
