package usecase

import (
	"context"
	"errors"
	"testing"
)

// mockObjectStore records every Put and can fail selectively by key.
type mockObjectStore struct {
	puts    map[string][]byte
	failFor map[string]error
}

func newMockObjectStore() *mockObjectStore {
	return &mockObjectStore{puts: map[string][]byte{}, failFor: map[string]error{}}
}

func (m *mockObjectStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if err, ok := m.failFor[key]; ok {
		return err
	}
	m.puts[key] = data
	return nil
}

// mockTranscriber is a mock implementation of the Transcriber interface.
type mockTranscriber struct {
	TranscribeFunc func(ctx context.Context, audio []byte, mimeType string) (string, error)
	called         bool
}

func (m *mockTranscriber) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	m.called = true
	if m.TranscribeFunc != nil {
		return m.TranscribeFunc(ctx, audio, mimeType)
	}
	return "hello world", nil
}

func TestIsSupportedAudioType(t *testing.T) {
	for _, ct := range SupportedAudioTypes {
		if !IsSupportedAudioType(ct) {
			t.Errorf("expected %s to be supported", ct)
		}
	}
	for _, ct := range []string{"video/mp4", "image/png", "", "audio/ogg"} {
		if IsSupportedAudioType(ct) {
			t.Errorf("expected %s to be unsupported", ct)
		}
	}
}

func TestTranscriptionUsecase_Transcribe(t *testing.T) {
	ctx := context.Background()
	audio := []byte("fake audio bytes")

	t.Run("uploads audio and transcript under the user prefix", func(t *testing.T) {
		store := newMockObjectStore()
		uc := NewTranscriptionUsecase(store, &mockTranscriber{})

		text, err := uc.Transcribe(ctx, "42", "memo.mp3", "audio/mpeg", audio)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "hello world" {
			t.Errorf("expected transcript 'hello world', got %q", text)
		}

		if _, ok := store.puts["private/42/audio/memo.mp3"]; !ok {
			t.Error("audio object was not stored")
		}
		transcript, ok := store.puts["private/42/transcripts/memo.txt"]
		if !ok {
			t.Fatal("transcript object was not stored")
		}
		if string(transcript) != "hello world" {
			t.Errorf("unexpected transcript content: %s", transcript)
		}
	})

	t.Run("audio upload failure fails the request before transcription", func(t *testing.T) {
		store := newMockObjectStore()
		store.failFor["private/42/audio/memo.mp3"] = errors.New("bucket unavailable")
		transcriber := &mockTranscriber{}
		uc := NewTranscriptionUsecase(store, transcriber)

		_, err := uc.Transcribe(ctx, "42", "memo.mp3", "audio/mpeg", audio)
		if err == nil {
			t.Fatal("expected error but got nil")
		}
		if transcriber.called {
			t.Error("transcriber must not run when the upload fails")
		}
	})

	t.Run("transcript upload failure is best-effort", func(t *testing.T) {
		store := newMockObjectStore()
		store.failFor["private/42/transcripts/memo.txt"] = errors.New("bucket unavailable")
		uc := NewTranscriptionUsecase(store, &mockTranscriber{})

		text, err := uc.Transcribe(ctx, "42", "memo.mp3", "audio/mpeg", audio)
		if err != nil {
			t.Fatalf("transcript storage failure must not fail the request: %v", err)
		}
		if text != "hello world" {
			t.Errorf("expected transcript 'hello world', got %q", text)
		}
	})

	t.Run("transcriber failure", func(t *testing.T) {
		store := newMockObjectStore()
		uc := NewTranscriptionUsecase(store, &mockTranscriber{
			TranscribeFunc: func(ctx context.Context, audio []byte, mimeType string) (string, error) {
				return "", errors.New("model unavailable")
			},
		})

		if _, err := uc.Transcribe(ctx, "42", "memo.mp3", "audio/mpeg", audio); err == nil {
			t.Fatal("expected error but got nil")
		}
	})

	t.Run("whitespace-only transcription is empty", func(t *testing.T) {
		store := newMockObjectStore()
		uc := NewTranscriptionUsecase(store, &mockTranscriber{
			TranscribeFunc: func(ctx context.Context, audio []byte, mimeType string) (string, error) {
				return "   \n  ", nil
			},
		})

		_, err := uc.Transcribe(ctx, "42", "memo.mp3", "audio/mpeg", audio)
		if !errors.Is(err, ErrEmptyTranscription) {
			t.Errorf("expected ErrEmptyTranscription, got %v", err)
		}
	})

	t.Run("empty audio is rejected", func(t *testing.T) {
		uc := NewTranscriptionUsecase(newMockObjectStore(), &mockTranscriber{})
		_, err := uc.Transcribe(ctx, "42", "memo.mp3", "audio/mpeg", nil)
		if !errors.Is(err, ErrEmptyAudio) {
			t.Errorf("expected ErrEmptyAudio, got %v", err)
		}
	})

	t.Run("oversized audio is rejected", func(t *testing.T) {
		uc := NewTranscriptionUsecase(newMockObjectStore(), &mockTranscriber{})
		big := make([]byte, MaxAudioSize+1)
		_, err := uc.Transcribe(ctx, "42", "memo.mp3", "audio/mpeg", big)
		if !errors.Is(err, ErrAudioTooLarge) {
			t.Errorf("expected ErrAudioTooLarge, got %v", err)
		}
	})
}
