// Package handler provides the HTTP handlers for the transcription feature.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harikrishnanks99/Ethnoverse/internal/api"
	"github.com/harikrishnanks99/Ethnoverse/internal/feature/transcription/usecase"
	jwtmw "github.com/harikrishnanks99/Ethnoverse/internal/platform/jwt"
)

// TranscriptionUsecase defines the usecase for audio transcription.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type TranscriptionUsecase interface {
	Transcribe(ctx context.Context, userID, filename, contentType string, audio []byte) (string, error)
}

// TranscriptionHandler handles HTTP requests for audio transcription.
type TranscriptionHandler struct {
	uc TranscriptionUsecase
}

// NewTranscriptionHandler creates a new instance of TranscriptionHandler.
func NewTranscriptionHandler(uc TranscriptionUsecase) *TranscriptionHandler {
	return &TranscriptionHandler{uc: uc}
}

// Transcribe accepts an audio file and returns its transcription.
//
// Endpoint: POST /transcribe (auth required)
// Content-Type: multipart/form-data, field "file"
func (h *TranscriptionHandler) Transcribe(c *gin.Context) {
	userID := c.GetString(jwtmw.ContextUserID)

	file, err := c.FormFile("file")
	if err != nil {
		slog.Warn("upload request without a file", "user_id", userID, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "no file was uploaded"})
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !usecase.IsSupportedAudioType(contentType) {
		slog.Warn("unsupported audio type", "user_id", userID, "content_type", contentType)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Error: "unsupported file type: '" + contentType + "'. Please upload one of: " + strings.Join(usecase.SupportedAudioTypes, ", "),
		})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("failed to open uploaded file", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read upload"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close uploaded file", "error", err)
		}
	}()

	audio, err := io.ReadAll(f)
	if err != nil {
		slog.Error("failed to read uploaded file", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read upload"})
		return
	}

	slog.Info("transcription requested", "user_id", userID, "filename", file.Filename, "bytes", len(audio))

	text, err := h.uc.Transcribe(c.Request.Context(), userID, file.Filename, contentType, audio)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyAudio) || errors.Is(err, usecase.ErrAudioTooLarge) {
			slog.Warn("upload rejected", "error", err, "user_id", userID, "filename", file.Filename)
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		if errors.Is(err, usecase.ErrEmptyTranscription) {
			slog.Error("empty transcription", "user_id", userID, "filename", file.Filename)
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: usecase.ErrEmptyTranscription.Error()})
			return
		}
		slog.Error("transcription failed", "error", err, "user_id", userID, "filename", file.Filename)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "transcription failed"})
		return
	}

	c.JSON(http.StatusOK, api.TranscriptionResponse{
		Filename:      file.Filename,
		Transcription: text,
	})
}
