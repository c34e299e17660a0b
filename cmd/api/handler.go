package api

import (
	adminDelivery "journeyhome-backend/internal/admin/delivery"
	"journeyhome-backend/internal/auth/delivery"
	authUsecase "journeyhome-backend/internal/auth/usecase"
	cohortDelivery "journeyhome-backend/internal/cohort/delivery"
	documentDelivery "journeyhome-backend/internal/document/delivery"
	journalDelivery "journeyhome-backend/internal/journal/delivery"
	messageDelivery "journeyhome-backend/internal/message/delivery"
	notificationDelivery "journeyhome-backend/internal/notification/delivery"

	"github.com/gin-gonic/gin"
)

// Handler assembles the HTTP server from the feature handlers.
type Handler struct {
	authUsecase         authUsecase.AuthUsecase
	authHandler         *delivery.AuthHandler
	adminHandler        *adminDelivery.AdminHandler
	cohortHandler       *cohortDelivery.CohortHandler
	messageHandler      *messageDelivery.MessageHandler
	journalHandler      *journalDelivery.JournalHandler
	documentHandler     *documentDelivery.DocumentHandler
	notificationHandler *notificationDelivery.NotificationHandler
}

// NewHandler creates the top-level HTTP handler
func NewHandler(
	authUc authUsecase.AuthUsecase,
	authHandler *delivery.AuthHandler,
	adminHandler *adminDelivery.AdminHandler,
	cohortHandler *cohortDelivery.CohortHandler,
	messageHandler *messageDelivery.MessageHandler,
	journalHandler *journalDelivery.JournalHandler,
	documentHandler *documentDelivery.DocumentHandler,
	notificationHandler *notificationDelivery.NotificationHandler,
) *Handler {
	return &Handler{
		authUsecase:         authUc,
		authHandler:         authHandler,
		adminHandler:        adminHandler,
		cohortHandler:       cohortHandler,
		messageHandler:      messageHandler,
		journalHandler:      journalHandler,
		documentHandler:     documentHandler,
		notificationHandler: notificationHandler,
	}
}

// Start runs the HTTP server on addr.
func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	authenticated := delivery.AuthMiddleware(h.authUsecase)

	SetupRoutes(r,
		h.authHandler,
		h.adminHandler,
		h.cohortHandler,
		h.messageHandler,
		h.journalHandler,
		h.documentHandler,
		h.notificationHandler,
		authenticated,
	)

	return r.Run(addr)
}
