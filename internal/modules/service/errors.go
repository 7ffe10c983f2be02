package service

import "errors"

var (
	ErrNotFound   = errors.New("trailer not found")
	ErrValidation = errors.New("validation error")
)
