package style

import "errors"

var (
	ErrStyleNotFound      = errors.New("style not found")
	ErrStyleAlreadyExists = errors.New("style already exists")
)
