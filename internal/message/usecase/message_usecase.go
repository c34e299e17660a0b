package usecase

import (
	"errors"
	"strings"

	authdomain "journeyhome-backend/internal/auth/domain"
	cohortUsecase "journeyhome-backend/internal/cohort/usecase"
	"journeyhome-backend/internal/message/domain"
	"journeyhome-backend/internal/message/repository"
)

var (
	ErrNoCohort  = errors.New("you are not a member of any cohort")
	ErrForbidden = errors.New("only moderators can post announcements and prompts")
)

// SendMessageRequest is the payload for posting a message.
type SendMessageRequest struct {
	Content     string             `json:"content" binding:"required"`
	MessageType domain.MessageType `json:"message_type" binding:"required"`
	RecipientID *string            `json:"recipient_id"`
	IsPinned    bool               `json:"is_pinned"`
}

// Notifier fans a sent message out to its audience. Implemented by the
// notification service; wired in at startup.
type Notifier interface {
	MessageSent(message *domain.Message)
}

// MessageUsecase defines messaging business logic
type MessageUsecase interface {
	ListBroadcasts(userID string) ([]domain.Message, error)
	ListPrivate(userID string) ([]domain.Message, error)
	Send(sender *authdomain.Profile, req *SendMessageRequest) (*domain.Message, error)
	// SetNotifier attaches the fanout service. Optional; without it
	// sends still succeed but nobody is notified.
	SetNotifier(notifier Notifier)
}

type messageUsecase struct {
	messageRepo repository.MessageRepository
	cohorts     cohortUsecase.CohortUsecase
	notifier    Notifier
}

// NewMessageUsecase creates a new instance of messageUsecase
func NewMessageUsecase(messageRepo repository.MessageRepository, cohorts cohortUsecase.CohortUsecase) MessageUsecase {
	return &messageUsecase{
		messageRepo: messageRepo,
		cohorts:     cohorts,
	}
}

func (u *messageUsecase) SetNotifier(notifier Notifier) {
	u.notifier = notifier
}

func (u *messageUsecase) ListBroadcasts(userID string) ([]domain.Message, error) {
	cohortID, err := u.cohorts.ResolveCohortID(userID)
	if err != nil {
		return nil, err
	}
	if cohortID == "" {
		return []domain.Message{}, nil
	}
	return u.messageRepo.FindBroadcasts(cohortID)
}

func (u *messageUsecase) ListPrivate(userID string) ([]domain.Message, error) {
	return u.messageRepo.FindPrivate(userID)
}

func (u *messageUsecase) Send(sender *authdomain.Profile, req *SendMessageRequest) (*domain.Message, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, errors.New("content is required")
	}

	cohortID, err := u.cohorts.ResolveCohortID(sender.ID)
	if err != nil {
		return nil, err
	}
	// Profile-level moderators and admins may post into cohorts they
	// do not belong to, but then must address one explicitly; this app
	// only needs the own-cohort path.
	if cohortID == "" {
		return nil, ErrNoCohort
	}

	switch req.MessageType {
	case domain.TypePrivate:
		if req.RecipientID == nil || *req.RecipientID == "" {
			return nil, errors.New("private messages require a recipient")
		}
	case domain.TypeAnnouncement, domain.TypePrompt:
		if req.RecipientID != nil {
			return nil, errors.New("broadcast messages cannot have a recipient")
		}
		canModerate, err := u.cohorts.CanModerate(sender, cohortID)
		if err != nil {
			return nil, err
		}
		if !canModerate {
			return nil, ErrForbidden
		}
	case domain.TypeGeneral:
		if req.RecipientID != nil {
			return nil, errors.New("general messages cannot have a recipient")
		}
	default:
		return nil, errors.New("invalid message type")
	}

	message := &domain.Message{
		CohortID:    cohortID,
		SenderID:    sender.ID,
		RecipientID: req.RecipientID,
		Content:     req.Content,
		MessageType: req.MessageType,
		IsPinned:    req.IsPinned,
	}
	if err := u.messageRepo.Create(message); err != nil {
		return nil, err
	}

	if u.notifier != nil {
		u.notifier.MessageSent(message)
	}

	return u.messageRepo.FindByID(message.ID)
}
