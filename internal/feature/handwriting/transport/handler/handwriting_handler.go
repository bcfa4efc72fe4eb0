// Package handler provides the HTTP handlers for the handwriting feature.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harikrishnanks99/Ethnoverse/internal/api"
	"github.com/harikrishnanks99/Ethnoverse/internal/feature/handwriting/domain/entity"
	"github.com/harikrishnanks99/Ethnoverse/internal/feature/handwriting/usecase"
)

// HandwritingUsecase defines the usecase for handwriting recognition.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type HandwritingUsecase interface {
	Recognize(ctx context.Context, imageData []byte, filename string) (*entity.PendingRequest, error)
	Confirm(ctx context.Context, requestID, confirmedText, userID string) (*entity.Document, error)
	PendingCount(ctx context.Context) (int64, error)
}

// HandwritingHandler handles HTTP requests for handwriting recognition.
type HandwritingHandler struct {
	uc HandwritingUsecase
}

// NewHandwritingHandler creates a new instance of HandwritingHandler.
func NewHandwritingHandler(uc HandwritingUsecase) *HandwritingHandler {
	return &HandwritingHandler{uc: uc}
}

// Recognize accepts a handwriting image and returns the preliminary OCR
// result with a request id for the later confirmation step.
//
// Endpoint: POST /api/recognize
// Content-Type: multipart/form-data, field "image" (max 10MB)
func (h *HandwritingHandler) Recognize(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		slog.Warn("recognize request without an image", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "image file is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("failed to open uploaded image", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read image"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close uploaded image", "error", err)
		}
	}()

	imageData, err := io.ReadAll(f)
	if err != nil {
		slog.Error("failed to read uploaded image", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read image"})
		return
	}

	req, err := h.uc.Recognize(c.Request.Context(), imageData, file.Filename)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyImage) || errors.Is(err, usecase.ErrImageTooLarge) {
			slog.Warn("recognize rejected", "error", err, "filename", file.Filename, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("recognition failed", "error", err, "filename", file.Filename)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "OCR processing failed"})
		return
	}

	lines := make([]api.LineResponse, 0, len(req.Result.Lines))
	for _, l := range req.Result.Lines {
		lines = append(lines, api.LineResponse{Line: l.Line, Confidence: l.Confidence})
	}
	c.JSON(http.StatusOK, api.RecognizeResponse{
		RequestID:  req.RequestID,
		Text:       req.Result.Text,
		Lines:      lines,
		Confidence: req.Result.Confidence,
		Method:     req.Result.Method,
	})
}

// Save confirms a preliminary OCR result and promotes it to a durable
// document.
//
// Endpoint: POST /api/save
func (h *HandwritingHandler) Save(c *gin.Context) {
	var req api.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("save validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	doc, err := h.uc.Confirm(c.Request.Context(), req.RequestID, req.ConfirmedText, req.UserID)
	if err != nil {
		if errors.Is(err, usecase.ErrRequestNotFound) {
			slog.Warn("save for unknown request id", "request_id", req.RequestID)
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: usecase.ErrRequestNotFound.Error()})
			return
		}
		slog.Error("save failed", "error", err, "request_id", req.RequestID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to save data"})
		return
	}

	c.JSON(http.StatusOK, api.SaveResponse{
		Message:    "data saved successfully",
		DocumentID: doc.RequestID,
	})
}

// Debug reports the pending-store state.
//
// Endpoint: GET /api/debug
func (h *HandwritingHandler) Debug(c *gin.Context) {
	count, err := h.uc.PendingCount(c.Request.Context())
	if err != nil {
		slog.Error("failed to count pending requests", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read pending store"})
		return
	}
	c.JSON(http.StatusOK, api.DebugResponse{Status: "running", PendingRequests: count})
}
