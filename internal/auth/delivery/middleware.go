package delivery

import (
	"net/http"
	"strings"

	"journeyhome-backend/internal/auth/authz"
	authdomain "journeyhome-backend/internal/auth/domain"
	"journeyhome-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the Bearer token and stores the caller's
// profile in the request context.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		token := parts[1]
		profile, err := authUsecase.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user", profile)
		c.Set("userID", profile.ID)
		c.Next()
	}
}

// RequireRole gates a route group on a minimum role. Must run after
// AuthMiddleware.
func RequireRole(minimum authdomain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := authz.RequireRole(CurrentProfile(c), minimum)
		if !decision.Allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": decision.Reason})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentProfile returns the authenticated profile stored by
// AuthMiddleware, or nil when absent.
func CurrentProfile(c *gin.Context) *authdomain.Profile {
	value, exists := c.Get("user")
	if !exists {
		return nil
	}
	profile, ok := value.(*authdomain.Profile)
	if !ok {
		return nil
	}
	return profile
}
