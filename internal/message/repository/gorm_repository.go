package repository

import (
	"errors"
	"time"

	"journeyhome-backend/internal/message/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormMessageRepository implements MessageRepository using GORM
type gormMessageRepository struct {
	db *gorm.DB
}

// NewGormMessageRepository creates a new GORM-based MessageRepository
func NewGormMessageRepository(db *gorm.DB) MessageRepository {
	return &gormMessageRepository{db: db}
}

func (r *gormMessageRepository) Create(message *domain.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	message.CreatedAt = time.Now()
	message.UpdatedAt = time.Now()
	return r.db.Create(message).Error
}

func (r *gormMessageRepository) FindByID(id string) (*domain.Message, error) {
	var message domain.Message
	err := r.db.Preload("Sender").Where("id = ?", id).First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

func (r *gormMessageRepository) FindBroadcasts(cohortID string) ([]domain.Message, error) {
	var messages []domain.Message
	err := r.db.Preload("Sender").
		Where("cohort_id = ? AND recipient_id IS NULL AND message_type IN ?",
			cohortID, []domain.MessageType{domain.TypeAnnouncement, domain.TypePrompt}).
		Order("is_pinned DESC").
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

func (r *gormMessageRepository) FindPrivate(userID string) ([]domain.Message, error) {
	var messages []domain.Message
	err := r.db.Preload("Sender").
		Where("message_type = ? AND (recipient_id = ? OR sender_id = ?)",
			domain.TypePrivate, userID, userID).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}
