package repository

import (
	"errors"
	"time"

	"journeyhome-backend/internal/document/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentRepository defines data access for shared documents.
type DocumentRepository interface {
	Create(document *domain.Document) error
	FindByID(id string) (*domain.Document, error)
	FindByCohort(cohortID string) ([]domain.Document, error)
}

// gormDocumentRepository implements DocumentRepository using GORM
type gormDocumentRepository struct {
	db *gorm.DB
}

// NewGormDocumentRepository creates a new GORM-based DocumentRepository
func NewGormDocumentRepository(db *gorm.DB) DocumentRepository {
	return &gormDocumentRepository{db: db}
}

func (r *gormDocumentRepository) Create(document *domain.Document) error {
	if document.ID == "" {
		document.ID = uuid.New().String()
	}
	document.CreatedAt = time.Now()
	return r.db.Create(document).Error
}

func (r *gormDocumentRepository) FindByID(id string) (*domain.Document, error) {
	var document domain.Document
	err := r.db.Where("id = ?", id).First(&document).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &document, nil
}

func (r *gormDocumentRepository) FindByCohort(cohortID string) ([]domain.Document, error) {
	var documents []domain.Document
	err := r.db.Preload("Uploader").
		Where("cohort_id = ?", cohortID).
		Order("created_at DESC").
		Find(&documents).Error
	return documents, err
}
