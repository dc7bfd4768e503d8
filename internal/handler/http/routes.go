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
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)

		r.Get("/api/programs", h.listPrograms)
		r.Get("/api/programs/search", h.searchPrograms)
		r.Get("/api/programs/{programID}", h.getProgram)
		r.Get("/api/programs/{programID}/reviews", h.getReviews)

		r.Get("/api/classes", h.listClasses)

		r.Get("/api/users/{userID}/stats", h.userStats)
		r.Get("/api/users/{userID}/programs", h.userPrograms)
	})

	// routes that mutate the catalog require a valid token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/programs", h.createProgram)
		r.Put("/api/programs/{programID}", h.updateProgram)
		r.Delete("/api/programs/{programID}", h.deleteProgram)

		r.Post("/api/programs/{programID}/reviews", h.createReview)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
