package repository

import (
	"errors"
	"time"

	"journeyhome-backend/internal/cohort/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormCohortRepository implements CohortRepository using GORM
type gormCohortRepository struct {
	db *gorm.DB
}

// NewGormCohortRepository creates a new GORM-based CohortRepository
func NewGormCohortRepository(db *gorm.DB) CohortRepository {
	return &gormCohortRepository{db: db}
}

func (r *gormCohortRepository) Create(cohort *domain.Cohort) error {
	if cohort.ID == "" {
		cohort.ID = uuid.New().String()
	}
	cohort.CreatedAt = time.Now()
	cohort.UpdatedAt = time.Now()
	return r.db.Create(cohort).Error
}

func (r *gormCohortRepository) FindByID(id string) (*domain.Cohort, error) {
	var cohort domain.Cohort
	err := r.db.Where("id = ?", id).First(&cohort).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cohort, nil
}

func (r *gormCohortRepository) FindByIDWithMembers(id string) (*domain.Cohort, error) {
	var cohort domain.Cohort
	err := r.db.Preload("Members.Profile").Where("id = ?", id).First(&cohort).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cohort, nil
}

func (r *gormCohortRepository) FindAllWithMembers() ([]domain.Cohort, error) {
	var cohorts []domain.Cohort
	err := r.db.Preload("Members.Profile").Order("created_at DESC").Find(&cohorts).Error
	return cohorts, err
}

func (r *gormCohortRepository) AddMember(member *domain.CohortMember) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	member.JoinedAt = time.Now()
	return r.db.Create(member).Error
}

func (r *gormCohortRepository) RemoveMember(cohortID, userID string) error {
	return r.db.Where("cohort_id = ? AND user_id = ?", cohortID, userID).Delete(&domain.CohortMember{}).Error
}

func (r *gormCohortRepository) RemoveMembershipsByUser(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&domain.CohortMember{}).Error
}

func (r *gormCohortRepository) FindMembership(userID string) (*domain.CohortMember, error) {
	var member domain.CohortMember
	err := r.db.Where("user_id = ?", userID).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *gormCohortRepository) FindMembers(cohortID string) ([]domain.CohortMember, error) {
	var members []domain.CohortMember
	err := r.db.Preload("Profile").Where("cohort_id = ?", cohortID).Find(&members).Error
	return members, err
}

func (r *gormCohortRepository) MemberIDs(cohortID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&domain.CohortMember{}).Where("cohort_id = ?", cohortID).Pluck("user_id", &ids).Error
	return ids, err
}
