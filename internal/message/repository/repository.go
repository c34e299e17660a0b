package repository

import "journeyhome-backend/internal/message/domain"

// MessageRepository defines data access for cohort messages.
type MessageRepository interface {
	Create(message *domain.Message) error
	FindByID(id string) (*domain.Message, error)
	// FindBroadcasts returns announcement/prompt messages with no
	// recipient, pinned first, then newest first.
	FindBroadcasts(cohortID string) ([]domain.Message, error)
	// FindPrivate returns private messages where the user is sender
	// or recipient, newest first.
	FindPrivate(userID string) ([]domain.Message, error)
}
