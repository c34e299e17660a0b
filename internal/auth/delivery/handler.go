package delivery

import (
	"errors"
	"log"
	"net/http"
	"net/url"

	authdto "journeyhome-backend/internal/auth/dto"
	"journeyhome-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RefreshToken handles POST /api/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req authdto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.RefreshToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/auth/logout. Always answers 200 so clients
// can drop their local session even when the server-side row is gone.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req authdto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err == nil && req.RefreshToken != "" {
		_ = h.authUsecase.Logout(req.RefreshToken)
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Recover handles POST /api/auth/recover. The response is identical
// whether or not the address exists.
func (h *AuthHandler) Recover(c *gin.Context) {
	var req authdto.RecoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authUsecase.RequestRecovery(c.Request.Context(), req.Email); err != nil {
		log.Printf("[Auth] recovery request for %s failed: %v", req.Email, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "if the address exists, a recovery email has been sent"})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	profile := CurrentProfile(c)
	if profile == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SetPassword handles POST /api/auth/set-password
func (h *AuthHandler) SetPassword(c *gin.Context) {
	var req authdto.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("userID")
	if err := h.authUsecase.SetPassword(userID, req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

// UpdateProfile handles PUT /api/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req authdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.authUsecase.UpdateProfile(c.GetString("userID"), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// RegisterFCMToken handles POST /api/fcm/register
func (h *AuthHandler) RegisterFCMToken(c *gin.Context) {
	var req authdto.RegisterFCMTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authUsecase.RegisterFCMToken(c.GetString("userID"), req.Token, req.DeviceInfo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "token registered"})
}

// UnregisterFCMToken handles DELETE /api/fcm/:token
func (h *AuthHandler) UnregisterFCMToken(c *gin.Context) {
	token := c.Param("token")
	if err := h.authUsecase.UnregisterFCMToken(token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "token removed"})
}

// Callback handles GET /auth/callback. The redirect can carry either a
// single-use code (invite/recovery links) or an access/refresh token
// pair (implicit flow). On success the session lands in the URL
// fragment so it never reaches server logs; on failure the browser is
// sent back to the login page.
func (h *AuthHandler) Callback(c *gin.Context) {
	params := usecase.CallbackParams{
		Code:         c.Query("code"),
		AccessToken:  c.Query("access_token"),
		RefreshToken: c.Query("refresh_token"),
		Type:         c.Query("type"),
		Next:         c.Query("next"),
	}

	result := h.authUsecase.ResolveCallback(params)

	redirect := result.Redirect
	if result.Session != nil {
		fragment := url.Values{}
		fragment.Set("access_token", result.Session.AccessToken)
		fragment.Set("refresh_token", result.Session.RefreshToken)
		redirect += "#" + fragment.Encode()
	}

	c.Redirect(http.StatusFound, redirect)
}
