package artist

import "errors"

var (
	ErrArtistNotFound = errors.New("artist not found")
	ErrStudioNotFound = errors.New("studio not found")
	ErrUnknownStyle   = errors.New("unknown style slug")
)
