package portfolio

import "errors"

var (
	ErrItemNotFound    = errors.New("portfolio item not found")
	ErrArtistNotFound  = errors.New("artist not found")
	ErrMissingImage    = errors.New("either an image file or an imageUrl is required")
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrImageTooLarge   = errors.New("image exceeds the size limit")
)
