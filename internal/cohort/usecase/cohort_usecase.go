package usecase

import (
	"errors"

	authdomain "journeyhome-backend/internal/auth/domain"
	"journeyhome-backend/internal/cohort/domain"
	"journeyhome-backend/internal/cohort/repository"
)

// cohortUsecase implements CohortUsecase
type cohortUsecase struct {
	cohortRepo repository.CohortRepository
	cache      *membershipCache
}

// NewCohortUsecase creates a new instance of cohortUsecase
func NewCohortUsecase(cohortRepo repository.CohortRepository) CohortUsecase {
	return &cohortUsecase{
		cohortRepo: cohortRepo,
		cache:      newMembershipCache(),
	}
}

func (u *cohortUsecase) ResolveCohortID(userID string) (string, error) {
	if cohortID, ok := u.cache.get(userID); ok {
		return cohortID, nil
	}

	membership, err := u.cohortRepo.FindMembership(userID)
	if err != nil {
		return "", err
	}
	if membership == nil {
		// Cache the negative result too; it is invalidated the same
		// way when the user is added to a cohort.
		u.cache.put(userID, "")
		return "", nil
	}

	u.cache.put(userID, membership.CohortID)
	return membership.CohortID, nil
}

func (u *cohortUsecase) GetMyCohort(userID string) (*domain.Cohort, error) {
	cohortID, err := u.ResolveCohortID(userID)
	if err != nil {
		return nil, err
	}
	if cohortID == "" {
		return nil, nil
	}
	return u.cohortRepo.FindByIDWithMembers(cohortID)
}

func (u *cohortUsecase) MemberIDs(cohortID string) ([]string, error) {
	return u.cohortRepo.MemberIDs(cohortID)
}

func (u *cohortUsecase) CanModerate(profile *authdomain.Profile, cohortID string) (bool, error) {
	if profile == nil {
		return false, nil
	}
	if profile.Role == authdomain.RoleAdmin || profile.Role == authdomain.RoleModerator {
		return true, nil
	}

	membership, err := u.cohortRepo.FindMembership(profile.ID)
	if err != nil {
		return false, err
	}
	if membership == nil || membership.CohortID != cohortID {
		return false, nil
	}
	return membership.Role == domain.MemberModerator, nil
}

func (u *cohortUsecase) ListCohorts() ([]domain.Cohort, error) {
	return u.cohortRepo.FindAllWithMembers()
}

func (u *cohortUsecase) CreateCohort(createdBy string, req *CreateCohortRequest) (*domain.Cohort, error) {
	cohort := &domain.Cohort{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    true,
		CreatedBy:   createdBy,
	}
	if err := u.cohortRepo.Create(cohort); err != nil {
		return nil, err
	}
	return cohort, nil
}

func (u *cohortUsecase) AddMember(cohortID string, req *AddMemberRequest) (*domain.CohortMember, error) {
	cohort, err := u.cohortRepo.FindByID(cohortID)
	if err != nil {
		return nil, err
	}
	if cohort == nil {
		return nil, errors.New("cohort not found")
	}

	role := req.Role
	if role == "" {
		role = domain.MemberParticipant
	}

	member := &domain.CohortMember{
		CohortID: cohortID,
		UserID:   req.UserID,
		Role:     role,
	}
	if err := u.cohortRepo.AddMember(member); err != nil {
		return nil, err
	}

	u.cache.invalidate(req.UserID)
	return member, nil
}

func (u *cohortUsecase) RemoveMember(cohortID, userID string) error {
	if err := u.cohortRepo.RemoveMember(cohortID, userID); err != nil {
		return err
	}
	u.cache.invalidate(userID)
	return nil
}

func (u *cohortUsecase) RemoveUserEverywhere(userID string) error {
	if err := u.cohortRepo.RemoveMembershipsByUser(userID); err != nil {
		return err
	}
	u.cache.invalidate(userID)
	return nil
}
