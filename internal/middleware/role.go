package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"art-auction-backend/internal/logger"
	"art-auction-backend/internal/models"
	"art-auction-backend/internal/supabase"
)

const (
	UserRoleKey = "user_role"
	ProfileKey  = "profile"
)

// ProfileLookup resolves the caller's profile row by auth user id.
type ProfileLookup interface {
	GetProfile(id string) (*models.Profile, error)
}

// RequireRole must run after AuthMiddleware. It stores the caller's profile on
// the context for handlers that need ownership checks.
func RequireRole(profiles ProfileLookup, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(UserIDKey)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "User not authenticated"})
			return
		}

		profile, err := profiles.GetProfile(userID)
		if err != nil && !errors.Is(err, supabase.ErrNotFound) {
			logger.Error("role check failed", map[string]any{"user_id": userID, "error": err.Error()})
			c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Unable to verify user role"})
			return
		}
		if profile == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "User profile not found"})
			return
		}

		if !hasRole(profile.Role, roles) {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Error: "Access denied. Required role: " + strings.Join(roles, " or "),
			})
			return
		}

		c.Set(UserRoleKey, profile.Role)
		c.Set(ProfileKey, profile)
		c.Next()
	}
}

func hasRole(role string, roles []string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
