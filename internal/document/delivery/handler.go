package delivery

import (
	"errors"
	"net/http"

	authdelivery "journeyhome-backend/internal/auth/delivery"
	"journeyhome-backend/internal/document/usecase"

	"github.com/gin-gonic/gin"
)

// DocumentHandler handles document HTTP requests
type DocumentHandler struct {
	documentUsecase usecase.DocumentUsecase
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(documentUsecase usecase.DocumentUsecase) *DocumentHandler {
	return &DocumentHandler{
		documentUsecase: documentUsecase,
	}
}

// List handles GET /api/documents
func (h *DocumentHandler) List(c *gin.Context) {
	documents, err := h.documentUsecase.List(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": documents})
}

// Download handles GET /api/documents/:id/download
func (h *DocumentHandler) Download(c *gin.Context) {
	url, err := h.documentUsecase.DownloadURL(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// Register handles POST /api/documents
func (h *DocumentHandler) Register(c *gin.Context) {
	var req usecase.RegisterDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.documentUsecase.Register(c.Request.Context(), authdelivery.CurrentProfile(c), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}
