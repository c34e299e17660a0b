package domain

import (
	"time"

	authdomain "journeyhome-backend/internal/auth/domain"
)

// MessageType classifies cohort messages. Announcements and prompts
// are broadcasts; private messages carry a recipient.
type MessageType string

const (
	TypeAnnouncement MessageType = "announcement"
	TypePrompt       MessageType = "prompt"
	TypeGeneral      MessageType = "general"
	TypePrivate      MessageType = "private"
)

// Message is a cohort message. A null RecipientID means the message is
// broadcast to the whole cohort.
type Message struct {
	ID          string      `json:"id" gorm:"primaryKey"`
	CohortID    string      `json:"cohort_id" gorm:"index;not null"`
	SenderID    string      `json:"sender_id" gorm:"not null"`
	RecipientID *string     `json:"recipient_id,omitempty" gorm:"index"`
	Content     string      `json:"content" gorm:"not null"`
	MessageType MessageType `json:"message_type" gorm:"default:general"`
	IsPinned    bool        `json:"is_pinned" gorm:"default:false"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	Sender *authdomain.Profile `json:"sender,omitempty" gorm:"foreignKey:SenderID;references:ID"`
}
