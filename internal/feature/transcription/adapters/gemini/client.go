// Package gemini provides a speech-to-text client backed by the Google
// Gemini API.
package gemini

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/harikrishnanks99/Ethnoverse/internal/feature/transcription/usecase"
)

const (
	// DefaultModel is the Gemini model used for transcription.
	DefaultModel = "gemini-2.0-flash"

	// transcriptionPrompt instructs the model to return the transcript only.
	transcriptionPrompt = "Transcribe the following audio file accurately and clearly to english"
)

// GeminiTranscriber transcribes audio via the Gemini generateContent API.
type GeminiTranscriber struct {
	client *genai.Client
	model  string
}

// Compile-time check that GeminiTranscriber implements Transcriber.
var _ usecase.Transcriber = (*GeminiTranscriber)(nil)

// NewGeminiTranscriber creates a Gemini client authenticated by API key.
// The shared HTTP client enforces the outbound timeout.
func NewGeminiTranscriber(ctx context.Context, apiKey string, httpClient *http.Client) (*GeminiTranscriber, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiTranscriber{client: client, model: DefaultModel}, nil
}

// Transcribe sends the audio bytes inline with the transcription prompt and
// returns the model's text response.
func (g *GeminiTranscriber) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(transcriptionPrompt),
		genai.NewPartFromBytes(audio, mimeType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	return resp.Text(), nil
}
