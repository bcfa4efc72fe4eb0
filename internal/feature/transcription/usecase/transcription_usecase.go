// Package usecase implements the business logic for the transcription
// feature.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"
)

// MaxAudioSize is the maximum accepted audio upload (25MB).
const MaxAudioSize = 25 * 1024 * 1024

// SupportedAudioTypes lists the content types the speech model accepts.
var SupportedAudioTypes = []string{
	"audio/mpeg",
	"audio/wav",
	"audio/x-wav",
	"audio/mp4",
	"audio/x-m4a",
	"audio/flac",
}

var (
	// ErrEmptyTranscription is returned when the speech model answers with
	// no text at all.
	ErrEmptyTranscription = errors.New("transcription failed: model returned an empty response")

	// ErrEmptyAudio is returned when the uploaded audio has no data.
	ErrEmptyAudio = errors.New("audio data is empty")

	// ErrAudioTooLarge is returned when the uploaded audio exceeds
	// MaxAudioSize.
	ErrAudioTooLarge = errors.New("audio exceeds the maximum size of 25MB")
)

// IsSupportedAudioType reports whether the given content type can be
// transcribed.
func IsSupportedAudioType(contentType string) bool {
	for _, t := range SupportedAudioTypes {
		if t == contentType {
			return true
		}
	}
	return false
}

// ObjectStore abstracts the object storage used for audio files and
// transcripts. Following Go convention, the interface is defined by the
// consumer (usecase), not the provider (adapters).
type ObjectStore interface {
	// Put stores an object under the given key.
	Put(ctx context.Context, key string, data []byte, contentType string) error
}

// Transcriber abstracts the speech-to-text model.
type Transcriber interface {
	// Transcribe converts raw audio bytes into text.
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

// transcriptionUsecase wires the object store and the speech model into the
// transcription flow.
type transcriptionUsecase struct {
	store       ObjectStore
	transcriber Transcriber
}

// NewTranscriptionUsecase creates a new instance of transcriptionUsecase.
func NewTranscriptionUsecase(store ObjectStore, transcriber Transcriber) *transcriptionUsecase {
	return &transcriptionUsecase{store: store, transcriber: transcriber}
}

// Transcribe uploads the original audio to the caller's private prefix,
// runs the speech model, and stores the transcript next to the audio.
// Losing the audio upload fails the request; losing the transcript copy is
// best-effort because the text is already in the response.
func (u *transcriptionUsecase) Transcribe(ctx context.Context, userID, filename, contentType string, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", ErrEmptyAudio
	}
	if len(audio) > MaxAudioSize {
		return "", ErrAudioTooLarge
	}

	audioKey := fmt.Sprintf("private/%s/audio/%s", userID, filename)
	if err := u.store.Put(ctx, audioKey, audio, contentType); err != nil {
		return "", fmt.Errorf("failed to upload audio: %w", err)
	}
	slog.Info("audio uploaded", "key", audioKey, "bytes", len(audio))

	text, err := u.transcriber.Transcribe(ctx, audio, contentType)
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyTranscription
	}

	base := strings.TrimSuffix(filename, path.Ext(filename))
	transcriptKey := fmt.Sprintf("private/%s/transcripts/%s.txt", userID, base)
	if err := u.store.Put(ctx, transcriptKey, []byte(text), "text/plain; charset=utf-8"); err != nil {
		slog.Warn("could not store transcript", "key", transcriptKey, "error", err)
	} else {
		slog.Info("transcript stored", "key", transcriptKey)
	}

	return text, nil
}
