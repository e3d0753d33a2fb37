package http

import (
	"net/http"

	"github.com/rs/cors"
)

// withCORS allows browser clients from the configured origins to call the
// API. The Authorization header is exposed so the token issued on register
// can be read by scripts.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: h.corsOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders: []string{"Authorization", traceIDHeader},
		MaxAge:         300,
	})
	return c.Handler
}
