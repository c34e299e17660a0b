package usecase

import (
	"errors"
	"strings"

	"journeyhome-backend/internal/journal/domain"
	"journeyhome-backend/internal/journal/repository"
)

// ErrNotFound covers both a genuinely missing entry and an entry owned
// by someone else; the two are indistinguishable to the caller.
var ErrNotFound = errors.New("journal entry not found")

// EntryRequest is the create/update payload.
type EntryRequest struct {
	Title   *string `json:"title"`
	Content string  `json:"content" binding:"required"`
}

// JournalUsecase defines journal business logic
type JournalUsecase interface {
	List(userID string) ([]domain.JournalEntry, error)
	Create(userID string, req *EntryRequest) (*domain.JournalEntry, error)
	Update(userID, entryID string, req *EntryRequest) (*domain.JournalEntry, error)
	Delete(userID, entryID string) error
}

type journalUsecase struct {
	repo repository.JournalRepository
}

// NewJournalUsecase creates a new instance of journalUsecase
func NewJournalUsecase(repo repository.JournalRepository) JournalUsecase {
	return &journalUsecase{repo: repo}
}

func (u *journalUsecase) List(userID string) ([]domain.JournalEntry, error) {
	return u.repo.FindByUser(userID)
}

func (u *journalUsecase) Create(userID string, req *EntryRequest) (*domain.JournalEntry, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, errors.New("content is required")
	}

	entry := &domain.JournalEntry{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := u.repo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (u *journalUsecase) Update(userID, entryID string, req *EntryRequest) (*domain.JournalEntry, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, errors.New("content is required")
	}

	entry, err := u.repo.FindByIDForUser(entryID, userID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrNotFound
	}

	entry.Title = req.Title
	entry.Content = req.Content
	if err := u.repo.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (u *journalUsecase) Delete(userID, entryID string) error {
	affected, err := u.repo.DeleteForUser(entryID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
