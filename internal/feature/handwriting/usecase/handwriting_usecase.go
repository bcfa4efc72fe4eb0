package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/harikrishnanks99/Ethnoverse/internal/feature/handwriting/domain/entity"
)

// MaxImageSize is the maximum accepted image upload (10MB).
const MaxImageSize = 10 * 1024 * 1024

// TextRecognizer abstracts the OCR engine. Following Go convention, the
// interface is defined by the consumer (usecase), not the provider
// (adapters).
type TextRecognizer interface {
	// RecognizeText extracts handwritten text from raw image bytes.
	RecognizeText(ctx context.Context, imageData []byte) (*entity.RecognitionResult, error)
}

// PendingStore abstracts the keyed store holding preliminary OCR results
// between recognition and confirmation.
type PendingStore interface {
	// Put stores a pending request under its request id.
	Put(ctx context.Context, req *entity.PendingRequest) error

	// Get retrieves a pending request by id. It returns ErrRequestNotFound
	// when the id is unknown or already evicted.
	Get(ctx context.Context, requestID string) (*entity.PendingRequest, error)

	// Delete removes a pending request.
	Delete(ctx context.Context, requestID string) error

	// Count returns the number of pending requests.
	Count(ctx context.Context) (int64, error)
}

// DocumentRepository abstracts the durable store for confirmed documents.
type DocumentRepository interface {
	// Create persists a confirmed document.
	Create(ctx context.Context, doc *entity.Document) error
}

// handwritingUsecase implements the recognize-then-confirm flow.
type handwritingUsecase struct {
	recognizer TextRecognizer
	pending    PendingStore
	documents  DocumentRepository
	uploadDir  string
	outputDir  string
}

// NewHandwritingUsecase creates a new instance of handwritingUsecase.
func NewHandwritingUsecase(recognizer TextRecognizer, pending PendingStore, documents DocumentRepository, uploadDir, outputDir string) *handwritingUsecase {
	return &handwritingUsecase{
		recognizer: recognizer,
		pending:    pending,
		documents:  documents,
		uploadDir:  uploadDir,
		outputDir:  outputDir,
	}
}

// Recognize stores the uploaded image, runs OCR on it, and records the
// preliminary result in the pending store under a fresh request id. The
// result stays resolvable until confirmed or evicted by TTL.
func (u *handwritingUsecase) Recognize(ctx context.Context, imageData []byte, filename string) (*entity.PendingRequest, error) {
	if len(imageData) == 0 {
		return nil, ErrEmptyImage
	}
	if len(imageData) > MaxImageSize {
		return nil, ErrImageTooLarge
	}

	requestID := uuid.NewString()

	if err := os.MkdirAll(u.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	imagePath := filepath.Join(u.uploadDir, requestID+"_"+filepath.Base(filename))
	if err := os.WriteFile(imagePath, imageData, 0o644); err != nil {
		return nil, fmt.Errorf("failed to store uploaded image: %w", err)
	}

	result, err := u.recognizer.RecognizeText(ctx, imageData)
	if err != nil {
		return nil, fmt.Errorf("recognition failed: %w", err)
	}

	req := &entity.PendingRequest{
		RequestID: requestID,
		ImagePath: imagePath,
		Filename:  filename,
		Result:    *result,
		CreatedAt: time.Now(),
	}
	// A confirmation is impossible without the pending record, so a store
	// failure fails the request.
	if err := u.pending.Put(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to store pending request: %w", err)
	}

	slog.Info("recognition stored", "request_id", requestID, "filename", filename, "chars", len(result.Text))
	return req, nil
}

// Confirm promotes a pending OCR result to a durable document. The pending
// record is deleted only after the document row is committed, so the
// transition is pending -> saved with no window where both are gone. The
// plain-text sidecar export is best-effort: the durable row already holds
// the text.
func (u *handwritingUsecase) Confirm(ctx context.Context, requestID, confirmedText, userID string) (*entity.Document, error) {
	req, err := u.pending.Get(ctx, requestID)
	if err != nil {
		return nil, err
	}

	doc := entity.BuildDocument(req, confirmedText, userID)
	if err := u.documents.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	u.exportText(doc)

	if err := u.pending.Delete(ctx, requestID); err != nil {
		// The TTL will reap the leftover pending record.
		slog.Warn("failed to delete pending request", "request_id", requestID, "error", err)
	}

	slog.Info("document saved", "request_id", requestID, "document_id", doc.ID, "corrected", doc.Corrected)
	return doc, nil
}

// PendingCount reports the number of unconfirmed requests.
func (u *handwritingUsecase) PendingCount(ctx context.Context) (int64, error) {
	return u.pending.Count(ctx)
}

func (u *handwritingUsecase) exportText(doc *entity.Document) {
	if err := os.MkdirAll(u.outputDir, 0o755); err != nil {
		slog.Warn("failed to create output dir", "error", err)
		return
	}
	path := filepath.Join(u.outputDir, "text_"+doc.RequestID+".txt")
	if err := os.WriteFile(path, []byte(doc.ConfirmedText), 0o644); err != nil {
		slog.Warn("failed to export plain text", "path", path, "error", err)
	}
}
