package delivery

import (
	"net/http"

	cohortUsecase "journeyhome-backend/internal/cohort/usecase"
	encouragementDomain "journeyhome-backend/internal/encouragement/domain"
	encouragementUsecase "journeyhome-backend/internal/encouragement/usecase"

	"github.com/gin-gonic/gin"
)

// CohortHandler serves the member-facing cohort feed.
type CohortHandler struct {
	cohortUsecase        cohortUsecase.CohortUsecase
	encouragementUsecase encouragementUsecase.EncouragementUsecase
}

// NewCohortHandler creates a new CohortHandler
func NewCohortHandler(cohorts cohortUsecase.CohortUsecase, encouragements encouragementUsecase.EncouragementUsecase) *CohortHandler {
	return &CohortHandler{
		cohortUsecase:        cohorts,
		encouragementUsecase: encouragements,
	}
}

// GetMyCohort handles GET /api/cohort: the caller's cohort with its
// members plus the latest feed entries. A user without a cohort gets
// a null cohort, not an error.
func (h *CohortHandler) GetMyCohort(c *gin.Context) {
	userID := c.GetString("userID")

	cohort, err := h.cohortUsecase.GetMyCohort(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if cohort == nil {
		c.JSON(http.StatusOK, gin.H{"cohort": nil})
		return
	}

	encouragements, err := h.encouragementUsecase.ListForCohort(cohort.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cohort":         cohort,
		"encouragements": encouragements,
	})
}

// PostEncouragementRequest is the body for POST /api/encouragements
type PostEncouragementRequest struct {
	Content string                                `json:"content" binding:"required"`
	Type    encouragementDomain.EncouragementType `json:"type"`
}

// PostEncouragement handles POST /api/encouragements
func (h *CohortHandler) PostEncouragement(c *gin.Context) {
	var req PostEncouragementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	encouragement, err := h.encouragementUsecase.Post(c.GetString("userID"), req.Content, req.Type)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, encouragement)
}
