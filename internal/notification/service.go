// Package notification fans cohort events out to their audience: an
// in-app notification row per target plus a best-effort FCM push.
// Fanout never fails the mutation that triggered it.
package notification

import (
	"context"
	"log"
	"time"

	authrepo "journeyhome-backend/internal/auth/repository"
	cohortUsecase "journeyhome-backend/internal/cohort/usecase"
	documentDomain "journeyhome-backend/internal/document/domain"
	messageDomain "journeyhome-backend/internal/message/domain"
	"journeyhome-backend/internal/notification/domain"
	"journeyhome-backend/internal/notification/repository"
	"journeyhome-backend/pkg/fcm"
)

const fanoutTimeout = 30 * time.Second

// Service delivers notifications. Implements the Notifier interfaces
// of the message and document usecases.
type Service struct {
	notificationRepo repository.NotificationRepository
	profileRepo      authrepo.ProfileRepository
	fcmRepo          authrepo.FCMTokenRepository
	cohorts          cohortUsecase.CohortUsecase
	fcmClient        *fcm.Client // nil when push is not configured
}

// NewService creates the fanout service. fcmClient may be nil; in-app
// notifications still work without push.
func NewService(
	notificationRepo repository.NotificationRepository,
	profileRepo authrepo.ProfileRepository,
	fcmRepo authrepo.FCMTokenRepository,
	cohorts cohortUsecase.CohortUsecase,
	fcmClient *fcm.Client,
) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		profileRepo:      profileRepo,
		fcmRepo:          fcmRepo,
		cohorts:          cohorts,
		fcmClient:        fcmClient,
	}
}

// MessageSent fans a message out: broadcasts go to every cohort member
// except the sender, private messages only to the recipient.
func (s *Service) MessageSent(message *messageDomain.Message) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), fanoutTimeout)
		defer cancel()

		senderName := s.senderName(message.SenderID)

		var targets []string
		var notificationType domain.NotificationType
		var title string

		switch message.MessageType {
		case messageDomain.TypePrivate:
			if message.RecipientID == nil {
				return
			}
			targets = []string{*message.RecipientID}
			notificationType = domain.TypeMessage
			title = "New message from " + senderName
		case messageDomain.TypeAnnouncement:
			targets = s.cohortTargets(message.CohortID, message.SenderID)
			notificationType = domain.TypeAnnouncement
			title = "New announcement"
		case messageDomain.TypePrompt:
			targets = s.cohortTargets(message.CohortID, message.SenderID)
			notificationType = domain.TypePrompt
			title = "New reflection prompt"
		default:
			return
		}

		s.deliver(ctx, targets, domain.Notification{
			Title:       title,
			Body:        truncate(message.Content, 140),
			Type:        notificationType,
			ReferenceID: message.ID,
		}, "/messages")
	}()
}

// DocumentShared notifies the cohort that new material is available.
func (s *Service) DocumentShared(document *documentDomain.Document) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), fanoutTimeout)
		defer cancel()

		targets := s.cohortTargets(document.CohortID, document.UploadedBy)
		s.deliver(ctx, targets, domain.Notification{
			Title:       "New document shared",
			Body:        document.Title,
			Type:        domain.TypeDocument,
			ReferenceID: document.ID,
		}, "/documents")
	}()
}

func (s *Service) cohortTargets(cohortID, excludeUserID string) []string {
	memberIDs, err := s.cohorts.MemberIDs(cohortID)
	if err != nil {
		log.Printf("[Notification] failed to resolve cohort %s members: %v", cohortID, err)
		return nil
	}

	targets := make([]string, 0, len(memberIDs))
	for _, id := range memberIDs {
		if id != excludeUserID {
			targets = append(targets, id)
		}
	}
	return targets
}

func (s *Service) deliver(ctx context.Context, targets []string, template domain.Notification, clickURL string) {
	if len(targets) == 0 {
		return
	}

	notifications := make([]domain.Notification, 0, len(targets))
	for _, userID := range targets {
		notification := template
		notification.UserID = userID
		notifications = append(notifications, notification)
	}
	if err := s.notificationRepo.CreateBatch(notifications); err != nil {
		log.Printf("[Notification] failed to store notifications: %v", err)
	}

	if s.fcmClient == nil {
		return
	}

	tokens, err := s.fcmRepo.GetTokensByUserIDs(targets)
	if err != nil {
		log.Printf("[Notification] failed to load FCM tokens: %v", err)
		return
	}
	if len(tokens) == 0 {
		return
	}

	tokenStrings := make([]string, 0, len(tokens))
	for _, t := range tokens {
		tokenStrings = append(tokenStrings, t.Token)
	}

	failed, err := s.fcmClient.SendToDevices(ctx, tokenStrings, fcm.NotificationData{
		Title: template.Title,
		Body:  template.Body,
		Data: map[string]string{
			"tag": string(template.Type) + "-" + template.ReferenceID,
			"url": clickURL,
		},
	})
	if err != nil {
		log.Printf("[Notification] push delivery failed: %v", err)
		return
	}

	// Tokens the provider rejected are dead; prune them.
	for _, token := range failed {
		if err := s.fcmRepo.DeleteToken(token); err != nil {
			log.Printf("[Notification] failed to prune token: %v", err)
		}
	}
}

func (s *Service) senderName(senderID string) string {
	profile, err := s.profileRepo.FindByID(senderID)
	if err != nil || profile == nil || profile.FullName == "" {
		return "a cohort member"
	}
	return profile.FullName
}

// truncate caps s at max runes, never splitting a multi-byte rune.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
