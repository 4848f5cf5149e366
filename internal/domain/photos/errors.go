package photos

import "errors"

var (
	ErrPhotoNotFound = errors.New("photo not found")
	ErrValidation    = errors.New("invalid photo")
)
