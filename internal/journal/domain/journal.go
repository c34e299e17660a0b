package domain

import "time"

// JournalEntry is a private reflection. Entries belong to exactly one
// user and are never visible to anyone else.
type JournalEntry struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Title     *string   `json:"title,omitempty"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
