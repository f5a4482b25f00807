package api

import (
	"net/http" // HTTP status codes

	"fintrack/internal/store"

	"github.com/gin-gonic/gin" // Gin web framework
)

// GetProfileHandler returns the caller's profile, creating it with defaults
// on first visit.
func GetProfileHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}
		profile, err := s.GetOrCreateProfile(c.Request.Context(), p)
		if err != nil {
			writeStoreError(c, err, "get_profile")
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// UpdateProfileHandler applies a settings patch to the caller's profile.
func UpdateProfileHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}
		var req store.ProfileInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		profile, err := s.UpdateProfile(c.Request.Context(), p, req)
		if err != nil {
			writeStoreError(c, err, "update_profile")
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}
