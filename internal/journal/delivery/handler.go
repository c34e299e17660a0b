package delivery

import (
	"errors"
	"net/http"

	"journeyhome-backend/internal/journal/usecase"

	"github.com/gin-gonic/gin"
)

// JournalHandler handles journal HTTP requests
type JournalHandler struct {
	journalUsecase usecase.JournalUsecase
}

// NewJournalHandler creates a new JournalHandler
func NewJournalHandler(journalUsecase usecase.JournalUsecase) *JournalHandler {
	return &JournalHandler{
		journalUsecase: journalUsecase,
	}
}

// List handles GET /api/journal
func (h *JournalHandler) List(c *gin.Context) {
	entries, err := h.journalUsecase.List(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// Create handles POST /api/journal
func (h *JournalHandler) Create(c *gin.Context) {
	var req usecase.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.journalUsecase.Create(c.GetString("userID"), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// Update handles PUT /api/journal/:id
func (h *JournalHandler) Update(c *gin.Context) {
	var req usecase.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.journalUsecase.Update(c.GetString("userID"), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// Delete handles DELETE /api/journal/:id
func (h *JournalHandler) Delete(c *gin.Context) {
	if err := h.journalUsecase.Delete(c.GetString("userID"), c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
}
