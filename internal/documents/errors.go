package documents

import "errors"

var (
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned for rejected input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrTextTooShort is returned when extracted text is below the corpus minimum.
	ErrTextTooShort = errors.New("document text too short")
)
