package domain

import (
	"time"

	authdomain "journeyhome-backend/internal/auth/domain"
)

// MemberRole is the role a user carries inside a cohort. Cohort
// moderators are distinct from the profile-level moderator role.
type MemberRole string

const (
	MemberParticipant MemberRole = "participant"
	MemberModerator   MemberRole = "moderator"
)

// Cohort is a group of participants walking a program together.
type Cohort struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Members []CohortMember `json:"members,omitempty" gorm:"foreignKey:CohortID"`
}

// CohortMember links a profile to a cohort. The app treats membership
// as at most one cohort per user; that is a usage pattern, not a
// schema constraint.
type CohortMember struct {
	ID       string     `json:"id" gorm:"primaryKey"`
	CohortID string     `json:"cohort_id" gorm:"index;not null"`
	UserID   string     `json:"user_id" gorm:"index;not null"`
	Role     MemberRole `json:"role" gorm:"default:participant"`
	JoinedAt time.Time  `json:"joined_at"`

	Profile *authdomain.Profile `json:"profile,omitempty" gorm:"foreignKey:UserID;references:ID"`
}
