// Package server runs the HTTP server of the todo application.
//
// It owns the listener and the [net/http.Server] lifecycle: startup
// notification, signal handling and graceful shutdown.
package server
