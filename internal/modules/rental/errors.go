package rental

import "errors"

var (
	// ErrConflict means the trailer is already assigned to a rental
	// whose date range overlaps the target rental's range.
	ErrConflict   = errors.New("trailer already assigned in this period")
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("validation error")
)
