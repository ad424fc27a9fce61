package portfolio

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/user"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/middleware"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/pkg/response"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/pkg/validator"
)

// Handler handles portfolio HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates portfolio handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /portfolio. Accepts either a JSON body with an
// imageUrl or a multipart form with an "image" file.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	var upload *Upload

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
			response.BadRequest(w, "Invalid multipart form")
			return
		}
		req.ArtistID = r.FormValue("artistId")
		req.Title = r.FormValue("title")
		req.Description = r.FormValue("description")
		req.ImageURL = r.FormValue("imageUrl")

		file, header, err := r.FormFile("image")
		if err == nil {
			defer file.Close()
			upload = &Upload{
				Filename: header.Filename,
				Size:     header.Size,
				Reader:   file,
			}
		} else if !errors.Is(err, http.ErrMissingFile) {
			response.BadRequest(w, "Invalid image upload")
			return
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid JSON body")
			return
		}
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	isAdmin := middleware.GetRole(r.Context()) == string(user.RoleAdmin)
	item, err := h.service.Create(r.Context(), middleware.GetUserID(r.Context()), isAdmin, &req, upload)
	if err != nil {
		switch {
		case errors.Is(err, ErrArtistNotFound):
			response.NotFound(w, "Artist not found")
		case errors.Is(err, ErrMissingImage):
			response.ValidationError(w, map[string]string{"image": "either an image file or an imageUrl is required"})
		case errors.Is(err, ErrUnsupportedType):
			response.ValidationError(w, map[string]string{"image": "unsupported image type"})
		case errors.Is(err, ErrImageTooLarge):
			response.ValidationError(w, map[string]string{"image": "image exceeds the size limit"})
		default:
			response.InternalError(w)
		}
		return
	}

	response.Created(w, ResponseFromEntity(item))
}

// ListByArtist handles GET /portfolio?artistId=
func (h *Handler) ListByArtist(w http.ResponseWriter, r *http.Request) {
	artistID, err := uuid.Parse(r.URL.Query().Get("artistId"))
	if err != nil {
		response.BadRequest(w, "Invalid or missing artistId")
		return
	}

	items, err := h.service.ListByArtist(r.Context(), artistID)
	if err != nil {
		if errors.Is(err, ErrArtistNotFound) {
			response.NotFound(w, "Artist not found")
			return
		}
		response.InternalError(w)
		return
	}

	out := make([]*ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ResponseFromEntity(item))
	}
	response.OK(w, out)
}
