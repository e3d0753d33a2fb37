package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. The static handler is registered as the NotFound
// and MethodNotAllowed fallback before the route groups are mounted, so every
// group inherits it.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if len(h.corsOrigins) > 0 {
		router.Use(h.withCORS())
	}
	router.Use(h.withJSONBody)

	router.NotFound(h.static())
	router.MethodNotAllowed(h.static())

	router.Get("/", h.index)

	// routes without authorization
	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	// routes with authorization
	router.Route("/todos", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.getTodos)
		r.Post("/", h.createTodo)
		r.Put("/{id}", h.updateTodo)
		r.Delete("/{id}", h.deleteTodo)
	})

	return router
}
