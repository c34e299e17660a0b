package repository

import "journeyhome-backend/internal/encouragement/domain"

// EncouragementRepository defines data access for the cohort feed.
type EncouragementRepository interface {
	Create(encouragement *domain.Encouragement) error
	// FindByID reloads a row with its author preloaded.
	FindByID(id string) (*domain.Encouragement, error)
	// FindByCohort returns the newest entries first, capped at limit.
	FindByCohort(cohortID string, limit int) ([]domain.Encouragement, error)
}
