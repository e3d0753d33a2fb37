// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHandlerProvided = errors.New("no http handler provided")

	// ErrListen is returned when the configured address cannot be bound.
	ErrListen = errors.New("error listening on server address")
)
