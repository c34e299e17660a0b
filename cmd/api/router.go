package api

import (
	"net/http"

	adminDelivery "journeyhome-backend/internal/admin/delivery"
	"journeyhome-backend/internal/auth/delivery"
	authdomain "journeyhome-backend/internal/auth/domain"
	cohortDelivery "journeyhome-backend/internal/cohort/delivery"
	documentDelivery "journeyhome-backend/internal/document/delivery"
	journalDelivery "journeyhome-backend/internal/journal/delivery"
	messageDelivery "journeyhome-backend/internal/message/delivery"
	notificationDelivery "journeyhome-backend/internal/notification/delivery"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers every route on the engine.
func SetupRoutes(
	r *gin.Engine,
	authHandler *delivery.AuthHandler,
	adminHandler *adminDelivery.AdminHandler,
	cohortHandler *cohortDelivery.CohortHandler,
	messageHandler *messageDelivery.MessageHandler,
	journalHandler *journalDelivery.JournalHandler,
	documentHandler *documentDelivery.DocumentHandler,
	notificationHandler *notificationDelivery.NotificationHandler,
	authenticated gin.HandlerFunc,
) {
	// Auth redirect target; lives outside /api because invite and
	// recovery emails link straight to it.
	r.GET("/auth/callback", authHandler.Callback)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.POST("/recover", authHandler.Recover)
			auth.GET("/me", authenticated, authHandler.Me)
			auth.POST("/set-password", authenticated, authHandler.SetPassword)
		}

		// Profile (protected)
		api.PUT("/profile", authenticated, authHandler.UpdateProfile)

		// FCM routes (protected)
		fcm := api.Group("/fcm")
		fcm.Use(authenticated)
		{
			fcm.POST("/register", authHandler.RegisterFCMToken)
			fcm.DELETE("/:token", authHandler.UnregisterFCMToken)
		}

		// Privileged admin endpoints; the handlers re-verify the
		// caller's role themselves.
		api.POST("/invite", authenticated, adminHandler.InviteUser)
		api.DELETE("/users/:id", authenticated, adminHandler.DeleteUser)

		// Cohort feed (protected)
		api.GET("/cohort", authenticated, cohortHandler.GetMyCohort)
		api.POST("/encouragements", authenticated, cohortHandler.PostEncouragement)

		// Messages (protected)
		messages := api.Group("/messages")
		messages.Use(authenticated)
		{
			messages.GET("", messageHandler.GetBroadcasts)
			messages.GET("/private", messageHandler.GetPrivate)
			messages.POST("", messageHandler.Send)
		}

		// Journal (protected, strictly caller-scoped)
		journal := api.Group("/journal")
		journal.Use(authenticated)
		{
			journal.GET("", journalHandler.List)
			journal.POST("", journalHandler.Create)
			journal.PUT("/:id", journalHandler.Update)
			journal.DELETE("/:id", journalHandler.Delete)
		}

		// Documents (protected)
		documents := api.Group("/documents")
		documents.Use(authenticated)
		{
			documents.GET("", documentHandler.List)
			documents.GET("/:id/download", documentHandler.Download)
			documents.POST("", documentHandler.Register)
		}

		// Notifications (protected)
		notifications := api.Group("/notifications")
		notifications.Use(authenticated)
		{
			notifications.GET("", notificationHandler.List)
			notifications.PATCH("/:id/read", notificationHandler.MarkRead)
		}

		// Admin management routes (role-gated as a group)
		admin := api.Group("/admin")
		admin.Use(authenticated, delivery.RequireRole(authdomain.RoleAdmin))
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.PATCH("/users/:id/role", adminHandler.ChangeRole)
			admin.GET("/cohorts", adminHandler.ListCohorts)
			admin.POST("/cohorts", adminHandler.CreateCohort)
			admin.POST("/cohorts/:id/members", adminHandler.AddMember)
			admin.DELETE("/cohorts/:id/members/:userId", adminHandler.RemoveMember)
		}
	}
}
