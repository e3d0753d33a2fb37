package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/MKhiriev/go-todo-server/internal/config"
	"github.com/MKhiriev/go-todo-server/internal/logger"
)

// idleTimeoutFactor scales the request timeout into the keep-alive window.
const idleTimeoutFactor = 4

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.Address(),
			Handler:           handler,
			ReadHeaderTimeout: cfg.RequestTimeout,
			ReadTimeout:       cfg.RequestTimeout,
			WriteTimeout:      cfg.RequestTimeout,
			IdleTimeout:       cfg.RequestTimeout * idleTimeoutFactor,
		},
		logger: logger,
	}
}

func (h *httpServer) listen() (net.Listener, error) {
	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrListen, h.server.Addr, err)
	}
	return listener, nil
}

// serve blocks until the server is shut down. A regular shutdown is not an
// error.
func (h *httpServer) serve(listener net.Listener) error {
	port := listener.Addr().(*net.TCPAddr).Port
	h.logger.Info().Msgf("Server is running on port %d, you can access it at http://localhost:%d", port, port)

	if err := h.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server Serve: %w", err)
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}
	return nil
}
