package repository

import (
	"errors"
	"time"

	"journeyhome-backend/internal/encouragement/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormEncouragementRepository implements EncouragementRepository using GORM
type gormEncouragementRepository struct {
	db *gorm.DB
}

// NewGormEncouragementRepository creates a new GORM-based EncouragementRepository
func NewGormEncouragementRepository(db *gorm.DB) EncouragementRepository {
	return &gormEncouragementRepository{db: db}
}

func (r *gormEncouragementRepository) Create(encouragement *domain.Encouragement) error {
	if encouragement.ID == "" {
		encouragement.ID = uuid.New().String()
	}
	encouragement.CreatedAt = time.Now()
	return r.db.Create(encouragement).Error
}

func (r *gormEncouragementRepository) FindByID(id string) (*domain.Encouragement, error) {
	var encouragement domain.Encouragement
	err := r.db.Preload("Author").Where("id = ?", id).First(&encouragement).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &encouragement, nil
}

func (r *gormEncouragementRepository) FindByCohort(cohortID string, limit int) ([]domain.Encouragement, error) {
	var encouragements []domain.Encouragement
	err := r.db.Preload("Author").
		Where("cohort_id = ?", cohortID).
		Order("created_at DESC").
		Limit(limit).
		Find(&encouragements).Error
	return encouragements, err
}
