package usecase

import (
	"context"
	"errors"
	"fmt"

	authdomain "journeyhome-backend/internal/auth/domain"
	cohortUsecase "journeyhome-backend/internal/cohort/usecase"
	"journeyhome-backend/internal/document/domain"
	"journeyhome-backend/internal/document/repository"

	"github.com/google/uuid"
)

var (
	ErrNoCohort  = errors.New("you are not a member of any cohort")
	ErrNotFound  = errors.New("document not found")
	ErrForbidden = errors.New("only moderators can upload documents")
)

// SignedURLs is the slice of pkg/storage the usecase needs; split out
// so tests can fake it.
type SignedURLs interface {
	PresignedDownloadURL(ctx context.Context, key string) (string, error)
	PresignedUploadURL(ctx context.Context, key string) (string, error)
}

// RegisterDocumentRequest registers upload metadata and claims an
// upload slot.
type RegisterDocumentRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	FileType    string `json:"file_type"`
	FileSize    int64  `json:"file_size"`
}

// RegisterDocumentResponse returns the stored row plus the signed PUT
// URL the client uploads the bytes to.
type RegisterDocumentResponse struct {
	Document  *domain.Document `json:"document"`
	UploadURL string           `json:"upload_url"`
}

// Notifier announces a newly shared document to the cohort.
type Notifier interface {
	DocumentShared(document *domain.Document)
}

// DocumentUsecase defines document business logic
type DocumentUsecase interface {
	List(userID string) ([]domain.Document, error)
	// DownloadURL checks cohort membership and returns a signed GET
	// URL valid for one hour.
	DownloadURL(ctx context.Context, userID, documentID string) (string, error)
	Register(ctx context.Context, uploader *authdomain.Profile, req *RegisterDocumentRequest) (*RegisterDocumentResponse, error)
	// SetNotifier attaches the fanout service. Optional.
	SetNotifier(notifier Notifier)
}

type documentUsecase struct {
	docRepo  repository.DocumentRepository
	cohorts  cohortUsecase.CohortUsecase
	storage  SignedURLs
	notifier Notifier
}

// NewDocumentUsecase creates a new instance of documentUsecase
func NewDocumentUsecase(docRepo repository.DocumentRepository, cohorts cohortUsecase.CohortUsecase, storage SignedURLs) DocumentUsecase {
	return &documentUsecase{
		docRepo: docRepo,
		cohorts: cohorts,
		storage: storage,
	}
}

func (u *documentUsecase) SetNotifier(notifier Notifier) {
	u.notifier = notifier
}

func (u *documentUsecase) List(userID string) ([]domain.Document, error) {
	cohortID, err := u.cohorts.ResolveCohortID(userID)
	if err != nil {
		return nil, err
	}
	if cohortID == "" {
		return []domain.Document{}, nil
	}
	return u.docRepo.FindByCohort(cohortID)
}

func (u *documentUsecase) DownloadURL(ctx context.Context, userID, documentID string) (string, error) {
	document, err := u.docRepo.FindByID(documentID)
	if err != nil {
		return "", err
	}
	if document == nil {
		return "", ErrNotFound
	}

	cohortID, err := u.cohorts.ResolveCohortID(userID)
	if err != nil {
		return "", err
	}
	// A document outside the caller's cohort is indistinguishable from
	// a missing one.
	if cohortID == "" || cohortID != document.CohortID {
		return "", ErrNotFound
	}

	return u.storage.PresignedDownloadURL(ctx, document.FilePath)
}

func (u *documentUsecase) Register(ctx context.Context, uploader *authdomain.Profile, req *RegisterDocumentRequest) (*RegisterDocumentResponse, error) {
	cohortID, err := u.cohorts.ResolveCohortID(uploader.ID)
	if err != nil {
		return nil, err
	}
	if cohortID == "" {
		return nil, ErrNoCohort
	}

	canModerate, err := u.cohorts.CanModerate(uploader, cohortID)
	if err != nil {
		return nil, err
	}
	if !canModerate {
		return nil, ErrForbidden
	}

	document := &domain.Document{
		CohortID:    cohortID,
		UploadedBy:  uploader.ID,
		Title:       req.Title,
		Description: req.Description,
		FilePath:    fmt.Sprintf("%s/%s", cohortID, uuid.New().String()),
		FileType:    req.FileType,
		FileSize:    req.FileSize,
	}
	if err := u.docRepo.Create(document); err != nil {
		return nil, err
	}

	uploadURL, err := u.storage.PresignedUploadURL(ctx, document.FilePath)
	if err != nil {
		return nil, err
	}

	if u.notifier != nil {
		u.notifier.DocumentShared(document)
	}

	return &RegisterDocumentResponse{
		Document:  document,
		UploadURL: uploadURL,
	}, nil
}
