// Package entity defines the domain entities for the handwriting feature.
package entity

import "time"

// Word is a single recognized word with its confidence score.
type Word struct {
	Text       string  `json:"text"`
	Confidence float32 `json:"confidence"`
}

// Line is a recognized line of text with its confidence score.
type Line struct {
	Line       string  `json:"line"`
	Confidence float32 `json:"confidence"`
}

// RecognitionResult is the raw output of the OCR engine for one image.
type RecognitionResult struct {
	Text       string  `json:"text"`
	Words      []Word  `json:"words"`
	Lines      []Line  `json:"lines"`
	Confidence float32 `json:"confidence"`
	Method     string  `json:"method"`
}

// PendingRequest maps a generated request id to its preliminary OCR result.
// It stays in the pending store until the caller confirms the text or the
// TTL evicts it.
type PendingRequest struct {
	RequestID string            `json:"request_id"`
	ImagePath string            `json:"image_path"`
	Filename  string            `json:"filename"`
	Result    RecognitionResult `json:"result"`
	CreatedAt time.Time         `json:"created_at"`
}
