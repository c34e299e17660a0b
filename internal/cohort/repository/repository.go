package repository

import "journeyhome-backend/internal/cohort/domain"

// CohortRepository defines data access for cohorts and memberships.
type CohortRepository interface {
	Create(cohort *domain.Cohort) error
	FindByID(id string) (*domain.Cohort, error)
	// FindByIDWithMembers preloads members and their profiles.
	FindByIDWithMembers(id string) (*domain.Cohort, error)
	FindAllWithMembers() ([]domain.Cohort, error)

	AddMember(member *domain.CohortMember) error
	RemoveMember(cohortID, userID string) error
	RemoveMembershipsByUser(userID string) error
	// FindMembership returns the user's membership, or nil when the
	// user belongs to no cohort.
	FindMembership(userID string) (*domain.CohortMember, error)
	FindMembers(cohortID string) ([]domain.CohortMember, error)
	MemberIDs(cohortID string) ([]string, error)
}
