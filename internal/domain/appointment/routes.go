package appointment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/middleware"
)

// Routes returns appointment router
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Get("/", h.List)
		r.Get("/{id}", h.GetByID)
		r.Patch("/{id}/status", h.UpdateStatus)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireClient())
			r.Post("/", h.Create)
		})
	})

	return r
}

// MeRoutes returns the /me appointment views
func (h *Handler) MeRoutes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireClient())
			r.Get("/appointments", h.ListMine)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireArtist())
			r.Get("/artist/appointments", h.ListMineAsArtist)
		})
	})

	return r
}
