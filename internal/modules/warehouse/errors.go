package warehouse

import "errors"

var (
	ErrNotFound   = errors.New("warehouse item not found")
	ErrValidation = errors.New("validation error")
)
