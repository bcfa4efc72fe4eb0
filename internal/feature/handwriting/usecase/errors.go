// Package usecase implements the business logic for the handwriting
// feature.
package usecase

import "errors"

var (
	// ErrRequestNotFound is returned when a request id does not resolve to
	// a pending OCR result (never stored, already confirmed, or evicted).
	ErrRequestNotFound = errors.New("request id not found")

	// ErrEmptyImage is returned when the uploaded image has no data.
	ErrEmptyImage = errors.New("image data is empty")

	// ErrImageTooLarge is returned when the uploaded image exceeds
	// MaxImageSize.
	ErrImageTooLarge = errors.New("image exceeds the maximum size of 10MB")
)
