package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer starts serving requests and blocks until a stop signal
	// arrives and the server has shut down, or serving fails.
	RunServer() error

	// Shutdown gracefully stops the server, waiting for in-flight requests
	// until ctx is done.
	Shutdown(ctx context.Context) error
}
