package adapters

import (
	"context"

	"gorm.io/gorm"

	"github.com/harikrishnanks99/Ethnoverse/internal/feature/handwriting/domain/entity"
	"github.com/harikrishnanks99/Ethnoverse/internal/feature/handwriting/usecase"
)

// documentGorm is the GORM implementation of the DocumentRepository
// interface.
type documentGorm struct {
	db *gorm.DB
}

// Compile-time check that documentGorm implements DocumentRepository.
var _ usecase.DocumentRepository = (*documentGorm)(nil)

// NewDocumentGorm creates a new documentGorm with the given gorm.DB
// connection.
func NewDocumentGorm(db *gorm.DB) *documentGorm {
	return &documentGorm{db: db}
}

// Create persists a confirmed document.
func (r *documentGorm) Create(ctx context.Context, doc *entity.Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}
