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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.home)
		r.Post("/user", h.register)
		r.Post("/login", h.login)
	})

	// the token travels in the path and is resolved by the service layer
	router.Group(func(r chi.Router) {
		r.Post("/frames/{token}", h.uploadFrames)
		r.Get("/frames/{token}/{code}", h.getFrames)
		r.Delete("/frames/{token}/{code}", h.deleteFrames)
	})

	return router
}
