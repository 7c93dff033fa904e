package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes behind transparent payload encryption
	router.Group(func(r chi.Router) {
		r.Use(h.withDecryption)
		r.Use(h.withEncryption)
		r.Post("/api/echo", h.echo)
	})

	router.Get("/api/version", h.getVersion)

	return router
}
