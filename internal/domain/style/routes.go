package style

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/middleware"
)

// Routes returns style router
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(middleware.RequireAdmin())
		r.Post("/", h.Create)
	})

	return r
}
