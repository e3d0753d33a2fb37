// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidTodoID is returned when the {id} URL parameter of a todo
	// route is not a positive integer.
	ErrInvalidTodoID = errors.New("invalid todo id in URL")

	// ErrInvalidJSON is returned when a request body cannot be decoded into
	// the expected payload.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrNoUserInContext is returned when a protected handler runs without
	// the user id the auth middleware stores in the request context.
	ErrNoUserInContext = errors.New("no authenticated user in request context")
)
