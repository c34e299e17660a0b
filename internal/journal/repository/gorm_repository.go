package repository

import (
	"errors"
	"time"

	"journeyhome-backend/internal/journal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JournalRepository defines data access for journal entries. Every
// query takes the owner's id; there is deliberately no way to load an
// entry without it.
type JournalRepository interface {
	Create(entry *domain.JournalEntry) error
	FindByUser(userID string) ([]domain.JournalEntry, error)
	FindByIDForUser(id, userID string) (*domain.JournalEntry, error)
	Update(entry *domain.JournalEntry) error
	DeleteForUser(id, userID string) (int64, error)
	DeleteByUser(userID string) error
}

// gormJournalRepository implements JournalRepository using GORM
type gormJournalRepository struct {
	db *gorm.DB
}

// NewGormJournalRepository creates a new GORM-based JournalRepository
func NewGormJournalRepository(db *gorm.DB) JournalRepository {
	return &gormJournalRepository{db: db}
}

func (r *gormJournalRepository) Create(entry *domain.JournalEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = time.Now()
	return r.db.Create(entry).Error
}

func (r *gormJournalRepository) FindByUser(userID string) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&entries).Error
	return entries, err
}

func (r *gormJournalRepository) FindByIDForUser(id, userID string) (*domain.JournalEntry, error) {
	var entry domain.JournalEntry
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *gormJournalRepository) Update(entry *domain.JournalEntry) error {
	entry.UpdatedAt = time.Now()
	return r.db.Save(entry).Error
}

func (r *gormJournalRepository) DeleteForUser(id, userID string) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.JournalEntry{})
	return result.RowsAffected, result.Error
}

func (r *gormJournalRepository) DeleteByUser(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&domain.JournalEntry{}).Error
}
