package delivery

import (
	"errors"
	"net/http"

	authdelivery "journeyhome-backend/internal/auth/delivery"
	"journeyhome-backend/internal/message/usecase"

	"github.com/gin-gonic/gin"
)

// MessageHandler handles message HTTP requests
type MessageHandler struct {
	messageUsecase usecase.MessageUsecase
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageUsecase usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{
		messageUsecase: messageUsecase,
	}
}

// GetBroadcasts handles GET /api/messages
func (h *MessageHandler) GetBroadcasts(c *gin.Context) {
	messages, err := h.messageUsecase.ListBroadcasts(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// GetPrivate handles GET /api/messages/private
func (h *MessageHandler) GetPrivate(c *gin.Context) {
	messages, err := h.messageUsecase.ListPrivate(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// Send handles POST /api/messages
func (h *MessageHandler) Send(c *gin.Context) {
	var req usecase.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.messageUsecase.Send(authdelivery.CurrentProfile(c), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, message)
}
