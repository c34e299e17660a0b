package usecase

import (
	"time"

	authdomain "journeyhome-backend/internal/auth/domain"
	"journeyhome-backend/internal/cohort/domain"
)

// CreateCohortRequest carries the admin cohort-creation payload.
type CreateCohortRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// AddMemberRequest adds a user to a cohort.
type AddMemberRequest struct {
	UserID string            `json:"user_id" binding:"required"`
	Role   domain.MemberRole `json:"role"`
}

// CohortUsecase defines cohort and membership business logic
type CohortUsecase interface {
	// ResolveCohortID returns the id of the caller's cohort, or ""
	// when the user belongs to none. Backed by the membership cache.
	ResolveCohortID(userID string) (string, error)
	GetMyCohort(userID string) (*domain.Cohort, error)
	MemberIDs(cohortID string) ([]string, error)
	// CanModerate reports whether the profile may post broadcast
	// content into the cohort (cohort moderator, or profile-level
	// moderator/admin).
	CanModerate(profile *authdomain.Profile, cohortID string) (bool, error)

	// Admin operations
	ListCohorts() ([]domain.Cohort, error)
	CreateCohort(createdBy string, req *CreateCohortRequest) (*domain.Cohort, error)
	AddMember(cohortID string, req *AddMemberRequest) (*domain.CohortMember, error)
	RemoveMember(cohortID, userID string) error
	// RemoveUserEverywhere drops all memberships for a user; used by
	// the privileged delete-user endpoint.
	RemoveUserEverywhere(userID string) error
}
