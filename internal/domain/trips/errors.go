package trips

import "errors"

var (
	ErrTripNotFound = errors.New("trip not found")
	ErrValidation   = errors.New("invalid trip")
)
