package domain

import (
	"time"

	authdomain "journeyhome-backend/internal/auth/domain"
)

// EncouragementType distinguishes encouragements from prayer requests.
type EncouragementType string

const (
	TypeEncouragement EncouragementType = "encouragement"
	TypePrayer        EncouragementType = "prayer"
)

// Encouragement is a short post on the cohort feed. Immutable once
// created; there is no edit or delete path.
type Encouragement struct {
	ID        string            `json:"id" gorm:"primaryKey"`
	CohortID  string            `json:"cohort_id" gorm:"index;not null"`
	AuthorID  string            `json:"author_id" gorm:"not null"`
	Content   string            `json:"content" gorm:"not null"`
	Type      EncouragementType `json:"type" gorm:"default:encouragement"`
	CreatedAt time.Time         `json:"created_at"`

	Author *authdomain.Profile `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
}
