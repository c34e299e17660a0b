package main

import (
	"log"

	api "journeyhome-backend/cmd/api"
	adminDelivery "journeyhome-backend/internal/admin/delivery"
	adminUsecase "journeyhome-backend/internal/admin/usecase"
	authDelivery "journeyhome-backend/internal/auth/delivery"
	authdomain "journeyhome-backend/internal/auth/domain"
	authRepo "journeyhome-backend/internal/auth/repository"
	authUsecase "journeyhome-backend/internal/auth/usecase"
	cohortDelivery "journeyhome-backend/internal/cohort/delivery"
	cohortdomain "journeyhome-backend/internal/cohort/domain"
	cohortRepo "journeyhome-backend/internal/cohort/repository"
	cohortUsecase "journeyhome-backend/internal/cohort/usecase"
	documentDelivery "journeyhome-backend/internal/document/delivery"
	documentdomain "journeyhome-backend/internal/document/domain"
	documentRepo "journeyhome-backend/internal/document/repository"
	documentUsecase "journeyhome-backend/internal/document/usecase"
	encouragementdomain "journeyhome-backend/internal/encouragement/domain"
	encouragementRepo "journeyhome-backend/internal/encouragement/repository"
	encouragementUsecase "journeyhome-backend/internal/encouragement/usecase"
	journalDelivery "journeyhome-backend/internal/journal/delivery"
	journaldomain "journeyhome-backend/internal/journal/domain"
	journalRepo "journeyhome-backend/internal/journal/repository"
	journalUsecase "journeyhome-backend/internal/journal/usecase"
	messageDelivery "journeyhome-backend/internal/message/delivery"
	messagedomain "journeyhome-backend/internal/message/domain"
	messageRepo "journeyhome-backend/internal/message/repository"
	messageUsecase "journeyhome-backend/internal/message/usecase"
	"journeyhome-backend/internal/notification"
	notificationDelivery "journeyhome-backend/internal/notification/delivery"
	notificationdomain "journeyhome-backend/internal/notification/domain"
	notificationRepo "journeyhome-backend/internal/notification/repository"
	"journeyhome-backend/pkg/config"
	"journeyhome-backend/pkg/database"
	"journeyhome-backend/pkg/fcm"
	"journeyhome-backend/pkg/mailer"
	"journeyhome-backend/pkg/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.Profile{},
		&authdomain.RefreshToken{},
		&authdomain.SignInCode{},
		&authdomain.FCMToken{},
		&cohortdomain.Cohort{},
		&cohortdomain.CohortMember{},
		&messagedomain.Message{},
		&encouragementdomain.Encouragement{},
		&journaldomain.JournalEntry{},
		&documentdomain.Document{},
		&notificationdomain.Notification{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	profileRepo := authRepo.NewProfileRepository(db)
	fcmTokenRepo := authRepo.NewFCMTokenRepository(db)
	cohortRepository := cohortRepo.NewGormCohortRepository(db)
	messageRepository := messageRepo.NewGormMessageRepository(db)
	encouragementRepository := encouragementRepo.NewGormEncouragementRepository(db)
	journalRepository := journalRepo.NewGormJournalRepository(db)
	documentRepository := documentRepo.NewGormDocumentRepository(db)
	notificationRepository := notificationRepo.NewGormNotificationRepository(db)

	// Initialize FCM client (optional; push disabled without credentials)
	var fcmClient *fcm.Client
	if cfg.FirebaseCredentials != "" {
		fcmClient, err = fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("[WARN] Failed to initialize FCM client (push notifications disabled): %v", err)
			fcmClient = nil
		}
	} else {
		log.Printf("[WARN] No Firebase credentials configured, FCM disabled")
	}

	// Initialize storage client for signed document URLs
	storageClient, err := storage.NewClient(cfg)
	if err != nil {
		log.Fatal("Failed to initialize storage client:", err)
	}

	// Initialize invite mailer
	inviteMailer := mailer.NewMailer(cfg.ResendAPIKey, cfg.EmailFrom, cfg.AppURL)

	// Initialize use cases (dependency injection)
	authUc := authUsecase.NewAuthUsecase(profileRepo, fcmTokenRepo, cfg)
	authUc.SetRecoveryMailer(inviteMailer)
	cohortUc := cohortUsecase.NewCohortUsecase(cohortRepository)
	encouragementUc := encouragementUsecase.NewEncouragementUsecase(encouragementRepository, cohortUc)
	messageUc := messageUsecase.NewMessageUsecase(messageRepository, cohortUc)
	journalUc := journalUsecase.NewJournalUsecase(journalRepository)
	documentUc := documentUsecase.NewDocumentUsecase(documentRepository, cohortUc, storageClient)
	adminUc := adminUsecase.NewAdminUsecase(profileRepo, fcmTokenRepo, journalRepository, notificationRepository, cohortUc, authUc, inviteMailer)

	// Notification fanout wires into message and document sends
	notifService := notification.NewService(notificationRepository, profileRepo, fcmTokenRepo, cohortUc, fcmClient)
	messageUc.SetNotifier(notifService)
	documentUc.SetNotifier(notifService)

	// Initialize HTTP handlers
	handler := api.NewHandler(
		authUc,
		authDelivery.NewAuthHandler(authUc),
		adminDelivery.NewAdminHandler(adminUc, cohortUc),
		cohortDelivery.NewCohortHandler(cohortUc, encouragementUc),
		messageDelivery.NewMessageHandler(messageUc),
		journalDelivery.NewJournalHandler(journalUc),
		documentDelivery.NewDocumentHandler(documentUc),
		notificationDelivery.NewNotificationHandler(notificationRepository),
	)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
