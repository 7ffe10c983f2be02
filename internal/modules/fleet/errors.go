package fleet

import "errors"

var (
	ErrNotFound        = errors.New("trailer not found")
	ErrDuplicateSerial = errors.New("serial number already registered")
	ErrValidation      = errors.New("validation error")
)
