package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/login/", h.login)
		r.Post("/register/", h.register)
		r.Get("/listusers/", h.listUsers)
		r.Delete("/removeuser/", h.removeUser)
		r.Get("/version/", h.getServerVersion)
	})

	// routes with token authorization
	router.Group(func(r chi.Router) {
		r.Use(h.tokenAuth)
		r.Post("/adduser/", h.addUser)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
