package portfolio

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/domain/artist"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/pkg/imaging"
	"github.com/RafaelPrado409/Marletplace-Tatuagem/internal/pkg/storage"
)

// MaxUploadSize limits portfolio image uploads
const MaxUploadSize = 10 << 20 // 10 MiB

// Upload carries a multipart image file
type Upload struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

// Service handles portfolio business logic
type Service struct {
	repo       Repository
	artistRepo artist.Repository
	storage    storage.Storage
	processor  *imaging.Processor
}

// NewService creates portfolio service
func NewService(repo Repository, artistRepo artist.Repository, store storage.Storage, processor *imaging.Processor) *Service {
	return &Service{
		repo:       repo,
		artistRepo: artistRepo,
		storage:    store,
		processor:  processor,
	}
}

// Create adds a portfolio item. An uploaded image is resized, thumbnailed
// and pushed to the storage backend; otherwise the request must carry an
// external imageUrl.
func (s *Service) Create(ctx context.Context, callerID uuid.UUID, isAdmin bool, req *CreateItemRequest, upload *Upload) (*Item, error) {
	artistID, err := s.resolveArtist(ctx, callerID, isAdmin, req.ArtistID)
	if err != nil {
		return nil, err
	}

	item := &Item{
		ID:        uuid.New(),
		ArtistID:  artistID,
		Title:     req.Title,
		CreatedAt: time.Now(),
	}
	if req.Description != "" {
		item.Description = sql.NullString{String: req.Description, Valid: true}
	}

	switch {
	case upload != nil:
		if err := s.storeUpload(ctx, item, upload); err != nil {
			return nil, err
		}
	case req.ImageURL != "":
		item.ImageURL = req.ImageURL
	default:
		return nil, ErrMissingImage
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListByArtist returns an artist's portfolio, newest first
func (s *Service) ListByArtist(ctx context.Context, artistID uuid.UUID) ([]*Item, error) {
	a, err := s.artistRepo.GetByID(ctx, artistID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrArtistNotFound
	}
	return s.repo.ListByArtist(ctx, artistID)
}

// resolveArtist picks the target artist profile. Admins address any artist
// by ID; artists always post to their own profile.
func (s *Service) resolveArtist(ctx context.Context, callerID uuid.UUID, isAdmin bool, requested string) (uuid.UUID, error) {
	if isAdmin && requested != "" {
		id, err := uuid.Parse(requested)
		if err != nil {
			return uuid.Nil, ErrArtistNotFound
		}
		a, err := s.artistRepo.GetByID(ctx, id)
		if err != nil {
			return uuid.Nil, err
		}
		if a == nil {
			return uuid.Nil, ErrArtistNotFound
		}
		return a.ID, nil
	}

	a, err := s.artistRepo.GetByUserID(ctx, callerID)
	if err != nil {
		return uuid.Nil, err
	}
	if a == nil {
		return uuid.Nil, ErrArtistNotFound
	}
	return a.ID, nil
}

func (s *Service) storeUpload(ctx context.Context, item *Item, upload *Upload) error {
	if !imaging.ValidateType(upload.Filename) {
		return ErrUnsupportedType
	}
	if !imaging.ValidateSize(upload.Size, MaxUploadSize) {
		return ErrImageTooLarge
	}

	processed, err := s.processor.Process(upload.Reader)
	if err != nil {
		return ErrUnsupportedType
	}

	ext := extFromContentType(processed.ContentType)
	originalKey := fmt.Sprintf("portfolio/%s%s", item.ID, ext)
	thumbKey := fmt.Sprintf("portfolio/%s_thumb%s", item.ID, ext)

	if err := s.storage.Put(ctx, originalKey, bytes.NewReader(processed.Original), processed.ContentType); err != nil {
		return err
	}
	if err := s.storage.Put(ctx, thumbKey, bytes.NewReader(processed.Thumbnail), processed.ContentType); err != nil {
		// Best effort cleanup of the original before bailing out.
		_ = s.storage.Delete(ctx, originalKey)
		return err
	}

	item.ImageURL = s.storage.GetURL(originalKey)
	item.ThumbnailURL = sql.NullString{String: s.storage.GetURL(thumbKey), Valid: true}
	return nil
}

func extFromContentType(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
