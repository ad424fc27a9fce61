package studio

import "errors"

var (
	ErrStudioNotFound        = errors.New("studio not found")
	ErrNotStudioOwner        = errors.New("caller does not own this studio")
	ErrOwnerAlreadyHasStudio = errors.New("owner already has a studio")
	ErrArtistNotFound        = errors.New("artist not found")
	ErrArtistNotInStudio     = errors.New("artist does not belong to this studio")
	ErrUserNotArtist         = errors.New("user does not have the artist role")
)
