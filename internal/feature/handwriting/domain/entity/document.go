package entity

import (
	"strings"
	"time"
	"unicode/utf8"
)

// DocumentStatus values. A Document only exists once confirmed, so the
// status is "saved" from the moment the row is written.
const StatusSaved = "saved"

// Document is the durable, NLP-ready record created when a caller confirms
// (and possibly corrects) a preliminary OCR result.
type Document struct {
	ID uint `gorm:"primaryKey"`

	// RequestID is the id of the pending request this document was
	// promoted from.
	RequestID string `gorm:"uniqueIndex;size:64;not null"`

	// UserID is the optional id of the confirming user.
	UserID string `gorm:"size:64;index"`

	// Filename is the original upload filename.
	Filename string `gorm:"size:255"`

	// ConfirmedText is the text as confirmed or corrected by the caller.
	ConfirmedText string `gorm:"type:text;not null"`

	// CleanedText is ConfirmedText with all whitespace collapsed, ready
	// for downstream NLP processing.
	CleanedText string `gorm:"type:text"`

	// OriginalText is the raw OCR output before any user correction.
	OriginalText string `gorm:"type:text"`

	// Corrected is true when the caller changed the OCR output.
	Corrected bool

	// Lines are the confirmed text split on newlines.
	Lines []string `gorm:"serializer:json"`

	WordCount int
	CharCount int
	LineCount int

	// Method names the OCR engine that produced the original text.
	Method     string `gorm:"size:64"`
	Confidence float32

	Status string `gorm:"size:16;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BuildDocument derives a Document from a pending request and the caller's
// confirmed text.
func BuildDocument(req *PendingRequest, confirmedText, userID string) *Document {
	lines := strings.Split(confirmedText, "\n")
	return &Document{
		RequestID:     req.RequestID,
		UserID:        userID,
		Filename:      req.Filename,
		ConfirmedText: confirmedText,
		CleanedText:   strings.Join(strings.Fields(confirmedText), " "),
		OriginalText:  req.Result.Text,
		Corrected:     confirmedText != req.Result.Text,
		Lines:         lines,
		WordCount:     len(strings.Fields(confirmedText)),
		CharCount:     utf8.RuneCountInString(confirmedText),
		LineCount:     len(lines),
		Method:        req.Result.Method,
		Confidence:    req.Result.Confidence,
		Status:        StatusSaved,
	}
}
