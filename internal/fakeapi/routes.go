package fakeapi

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Route("/api", func(api chi.Router) {
		// routes without authorization
		api.Group(func(r chi.Router) {
			r.Post("/users/register", h.register)
			r.Post("/users/login", h.login)
			r.Get("/version", h.getServerVersion)
		})

		api.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/expenses/add", h.addExpense)
			r.Get("/expenses/all", h.allExpenses)
			r.Get("/expenses/user/date", h.expensesByDate)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
