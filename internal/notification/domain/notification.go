package domain

import "time"

// NotificationType mirrors what triggered the notification.
type NotificationType string

const (
	TypeMessage      NotificationType = "message"
	TypeAnnouncement NotificationType = "announcement"
	TypePrompt       NotificationType = "prompt"
	TypeDocument     NotificationType = "document"
)

// Notification is an in-app notification row; push delivery is
// best-effort on top of these.
type Notification struct {
	ID          string           `json:"id" gorm:"primaryKey"`
	UserID      string           `json:"user_id" gorm:"index;not null"`
	Title       string           `json:"title"`
	Body        string           `json:"body"`
	Type        NotificationType `json:"type"`
	ReferenceID string           `json:"reference_id,omitempty"`
	IsRead      bool             `json:"is_read" gorm:"default:false"`
	CreatedAt   time.Time        `json:"created_at"`
}
