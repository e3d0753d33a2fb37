// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// todo server handlers and middleware.
//
// The Msg* constants are the human-readable strings written into the
// {"message": ...} bodies of HTTP responses.
package app

const (
	// MsgNoTokenProvided is returned by the auth middleware when the request
	// has no "Authorization" header.
	MsgNoTokenProvided = "No token provided"

	// MsgInvalidToken is returned when the token is malformed, expired or
	// signed by someone else.
	MsgInvalidToken = "Invalid token"

	// MsgUserNotFound is returned by login for an unknown username.
	MsgUserNotFound = "User not found"

	// MsgInvalidPassword is returned by login when the password does not
	// match the stored hash.
	MsgInvalidPassword = "Invalid password"

	// MsgUsernameAlreadyExists is returned by register for a taken username.
	MsgUsernameAlreadyExists = "Username already exists"

	// MsgInvalidJSON is returned when a request body is not valid JSON or
	// does not have the expected shape.
	MsgInvalidJSON = "Invalid JSON"

	// MsgInvalidDataProvided is returned when input fails validation and no
	// more specific message applies.
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgBodyTooLarge is returned when a request body exceeds the configured
	// limit.
	MsgBodyTooLarge = "Request body too large"

	// MsgInvalidRequestBody is returned when the request body cannot be read.
	MsgInvalidRequestBody = "Invalid request body"

	MsgTodoNotFound  = "Todo not found"
	MsgInvalidTodoID = "Invalid todo id"
	MsgTodoCompleted = "Todo completed"
	MsgTodoUpdated   = "Todo updated"
	MsgTodoDeleted   = "Todo deleted"

	MsgUsernameRequired = "Username is required"
	MsgUsernameTooLong  = "Username is too long"
	MsgPasswordRequired = "Password is required"
	MsgPasswordTooLong  = "Password is too long"
	MsgTaskRequired     = "Task is required"
	MsgTaskTooLong      = "Task is too long"
	MsgNothingToUpdate  = "Nothing to update"
)
