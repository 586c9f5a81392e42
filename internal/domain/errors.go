package domain

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidFormat = errors.New("invalid index format")
	ErrIndexBounds   = errors.New("index out of bounds")
)
