package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dailydish/backend/internal/middleware"
	"github.com/dailydish/backend/internal/service"
	"github.com/dailydish/backend/internal/types"
)

// ProfileHandler serves the device dietary profile and settings.
type ProfileHandler struct {
	profiles service.IProfileService
}

func NewProfileHandler(profiles service.IProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile", middleware.DeviceRequired())
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.POST("/reset", h.ResetProfile)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, prefs, err := h.profiles.GetProfile(c.Request.Context(), middleware.DeviceID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":     profile,
		"preferences": prefs,
	})
}

// UpdateProfile replaces the stored dietary profile. Preference fields are
// merged: an omitted field keeps its stored value.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateProfile(&req.Profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deviceID := middleware.DeviceID(c)
	_, prefs, err := h.profiles.GetProfile(c.Request.Context(), deviceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	if req.Measurement != nil {
		if !req.Measurement.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid measurement preference"})
			return
		}
		prefs.Measurement = *req.Measurement
	}
	if req.DefaultServings != nil {
		if *req.DefaultServings < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid default servings"})
			return
		}
		prefs.DefaultServings = *req.DefaultServings
	}
	if req.HasCompletedOnboarding != nil {
		prefs.HasCompletedOnboarding = *req.HasCompletedOnboarding
	}

	if err := h.profiles.SaveProfile(c.Request.Context(), deviceID, req.Profile, prefs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":     req.Profile,
		"preferences": prefs,
	})
}

// ResetProfile restores the empty profile and default settings, as if the app
// had been reinstalled. The daily pick state is left alone.
func (h *ProfileHandler) ResetProfile(c *gin.Context) {
	if err := h.profiles.ResetProfile(c.Request.Context(), middleware.DeviceID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":     types.EmptyProfile(),
		"preferences": types.DefaultDevicePreferences(),
	})
}

// validateProfile rejects enum values outside the known sets and normalizes
// an omitted max duration to "any".
func validateProfile(profile *types.DietaryProfile) error {
	if profile.MaxDuration != "" && !profile.MaxDuration.Valid() {
		return errors.New("invalid max_duration")
	}
	for day, override := range profile.PerDayOverrides {
		if !day.Valid() {
			return errors.New("invalid weekday in per_day_overrides")
		}
		if override.MaxDuration != "" && !override.MaxDuration.Valid() {
			return errors.New("invalid max_duration in per_day_overrides")
		}
	}
	if profile.MaxDuration == "" {
		profile.MaxDuration = types.DurationAny
	}
	return nil
}
