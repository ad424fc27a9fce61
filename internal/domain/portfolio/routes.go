package portfolio

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/middleware"
)

// Routes returns portfolio router
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListByArtist)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(middleware.RequireArtist())
		r.Post("/", h.Create)
	})

	return r
}
