package backup

import "errors"

var ErrInvalidDocument = errors.New("invalid backup document")
