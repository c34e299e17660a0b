package repository

import (
	"time"

	"journeyhome-backend/internal/notification/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationRepository defines data access for in-app notifications.
type NotificationRepository interface {
	CreateBatch(notifications []domain.Notification) error
	FindByUser(userID string) ([]domain.Notification, error)
	MarkRead(id, userID string) (int64, error)
	DeleteByUser(userID string) error
}

// gormNotificationRepository implements NotificationRepository using GORM
type gormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM-based NotificationRepository
func NewGormNotificationRepository(db *gorm.DB) NotificationRepository {
	return &gormNotificationRepository{db: db}
}

func (r *gormNotificationRepository) CreateBatch(notifications []domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	now := time.Now()
	for i := range notifications {
		if notifications[i].ID == "" {
			notifications[i].ID = uuid.New().String()
		}
		notifications[i].CreatedAt = now
	}
	return r.db.Create(&notifications).Error
}

func (r *gormNotificationRepository) FindByUser(userID string) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Limit(50).Find(&notifications).Error
	return notifications, err
}

func (r *gormNotificationRepository) MarkRead(id, userID string) (int64, error) {
	result := r.db.Model(&domain.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

func (r *gormNotificationRepository) DeleteByUser(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&domain.Notification{}).Error
}
