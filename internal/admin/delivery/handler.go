package delivery

import (
	"errors"
	"net/http"

	"journeyhome-backend/internal/admin/usecase"
	"journeyhome-backend/internal/auth/authz"
	authdelivery "journeyhome-backend/internal/auth/delivery"
	authdomain "journeyhome-backend/internal/auth/domain"
	cohortUsecase "journeyhome-backend/internal/cohort/usecase"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles privileged administration requests.
type AdminHandler struct {
	adminUsecase  usecase.AdminUsecase
	cohortUsecase cohortUsecase.CohortUsecase
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminUsecase usecase.AdminUsecase, cohorts cohortUsecase.CohortUsecase) *AdminHandler {
	return &AdminHandler{
		adminUsecase:  adminUsecase,
		cohortUsecase: cohorts,
	}
}

// requireAdmin re-verifies the caller before any privileged action.
// Returns nil after writing the response when the caller is not allowed.
func (h *AdminHandler) requireAdmin(c *gin.Context) *authdomain.Profile {
	profile := authdelivery.CurrentProfile(c)
	if profile == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil
	}
	if decision := authz.RequireAdmin(profile); !decision.Allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": decision.Reason})
		return nil
	}
	return profile
}

// InviteUser handles POST /api/invite
func (h *AdminHandler) InviteUser(c *gin.Context) {
	if h.requireAdmin(c) == nil {
		return
	}

	var req usecase.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.adminUsecase.InviteUser(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": profile})
}

// DeleteUser handles DELETE /api/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	caller := h.requireAdmin(c)
	if caller == nil {
		return
	}

	if err := h.adminUsecase.DeleteUser(caller.ID, c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminUsecase.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// ChangeRoleRequest is the body for PATCH /api/admin/users/:id/role
type ChangeRoleRequest struct {
	Role authdomain.Role `json:"role" binding:"required"`
}

// ChangeRole handles PATCH /api/admin/users/:id/role
func (h *AdminHandler) ChangeRole(c *gin.Context) {
	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.adminUsecase.ChangeRole(c.Param("id"), req.Role)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListCohorts handles GET /api/admin/cohorts
func (h *AdminHandler) ListCohorts(c *gin.Context) {
	cohorts, err := h.cohortUsecase.ListCohorts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cohorts": cohorts})
}

// CreateCohort handles POST /api/admin/cohorts
func (h *AdminHandler) CreateCohort(c *gin.Context) {
	caller := authdelivery.CurrentProfile(c)

	var req cohortUsecase.CreateCohortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cohort, err := h.cohortUsecase.CreateCohort(caller.ID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cohort)
}

// AddMember handles POST /api/admin/cohorts/:id/members
func (h *AdminHandler) AddMember(c *gin.Context) {
	var req cohortUsecase.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.cohortUsecase.AddMember(c.Param("id"), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, member)
}

// RemoveMember handles DELETE /api/admin/cohorts/:id/members/:userId
func (h *AdminHandler) RemoveMember(c *gin.Context) {
	if err := h.cohortUsecase.RemoveMember(c.Param("id"), c.Param("userId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "member removed"})
}
