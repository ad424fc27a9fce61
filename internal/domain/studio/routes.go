package studio

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/middleware"
)

// Routes returns studio router
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Search)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Post("/my", h.CreateMine)
		r.Get("/my", h.GetMine)
		r.Get("/my/available-artists", h.AvailableArtists)

		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)

		r.Post("/{id}/artists", h.AddArtistByEmail)
		r.Post("/{id}/artists/by-user", h.AddArtistByUser)
		r.Patch("/{id}/artists/{artistId}", h.UpdateRosterArtist)
		r.Delete("/{id}/artists/{artistId}", h.RemoveArtist)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin())
			r.Get("/admin/all", h.ListAll)
			r.Patch("/admin/{id}", h.AdminUpdate)
			r.Delete("/admin/{id}", h.AdminDelete)
		})
	})

	r.Get("/{id}", h.GetByID)

	return r
}
