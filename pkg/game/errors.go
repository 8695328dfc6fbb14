package game

import "errors"

var (
	// ErrResourceNotFound is returned when a resource ID is not declared in the
	// resource configuration or the backing file does not exist.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrUnsupportedFormat is returned for audio or image files whose format
	// cannot be decoded.
	ErrUnsupportedFormat = errors.New("unsupported resource format")
)
