package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// Browser clients send credentialed requests, so the allow-list is echoed
	// back per-origin instead of "*". Preflight requests are answered with 200.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "X-Requested-With", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/health", h.health)

		r.Post("/users/signup", h.signUp)
		r.Post("/users/login", h.login)
		r.Post("/users/logout", h.logout)
	})

	// routes behind the bearer-token gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/current", h.currentUser)

		r.Get("/contacts", h.listContacts)
		r.Post("/contacts", h.createContact)
		r.Delete("/contacts/{contactID}", h.deleteContact)
	})

	return router
}
