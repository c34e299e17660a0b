package usecase

import (
	"errors"
	"strings"

	cohortUsecase "journeyhome-backend/internal/cohort/usecase"
	"journeyhome-backend/internal/encouragement/domain"
	"journeyhome-backend/internal/encouragement/repository"
)

// feedLimit is how many entries the cohort feed shows.
const feedLimit = 20

// ErrNoCohort is returned when the caller belongs to no cohort.
var ErrNoCohort = errors.New("you are not a member of any cohort")

// EncouragementUsecase defines feed business logic
type EncouragementUsecase interface {
	// ListForCohort returns the latest feed entries, newest first.
	ListForCohort(cohortID string) ([]domain.Encouragement, error)
	// Post writes the entry and returns it with the author preloaded,
	// so clients prepend only after the write is confirmed.
	Post(userID, content string, encouragementType domain.EncouragementType) (*domain.Encouragement, error)
}

type encouragementUsecase struct {
	repo    repository.EncouragementRepository
	cohorts cohortUsecase.CohortUsecase
}

// NewEncouragementUsecase creates a new instance of encouragementUsecase
func NewEncouragementUsecase(repo repository.EncouragementRepository, cohorts cohortUsecase.CohortUsecase) EncouragementUsecase {
	return &encouragementUsecase{
		repo:    repo,
		cohorts: cohorts,
	}
}

func (u *encouragementUsecase) ListForCohort(cohortID string) ([]domain.Encouragement, error) {
	return u.repo.FindByCohort(cohortID, feedLimit)
}

func (u *encouragementUsecase) Post(userID, content string, encouragementType domain.EncouragementType) (*domain.Encouragement, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.New("content is required")
	}

	cohortID, err := u.cohorts.ResolveCohortID(userID)
	if err != nil {
		return nil, err
	}
	if cohortID == "" {
		return nil, ErrNoCohort
	}

	if encouragementType == "" {
		encouragementType = domain.TypeEncouragement
	}
	if encouragementType != domain.TypeEncouragement && encouragementType != domain.TypePrayer {
		return nil, errors.New("invalid encouragement type")
	}

	encouragement := &domain.Encouragement{
		CohortID: cohortID,
		AuthorID: userID,
		Content:  content,
		Type:     encouragementType,
	}
	if err := u.repo.Create(encouragement); err != nil {
		return nil, err
	}

	// Reload with the author so the response is feed-ready.
	return u.repo.FindByID(encouragement.ID)
}
