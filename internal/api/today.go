package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dailydish/backend/internal/middleware"
	"github.com/dailydish/backend/internal/model"
	"github.com/dailydish/backend/internal/service"
	"github.com/dailydish/backend/internal/types"
)

// TodayHandler serves the daily pick endpoints. Every route is device-scoped.
type TodayHandler struct {
	picks    service.IDailyPickService
	profiles service.IProfileService
	clock    service.Clock
}

func NewTodayHandler(picks service.IDailyPickService, profiles service.IProfileService) *TodayHandler {
	return &TodayHandler{picks: picks, profiles: profiles, clock: service.NewSystemClock()}
}

func (h *TodayHandler) RegisterRoutes(router *gin.RouterGroup) {
	today := router.Group("/today", middleware.DeviceRequired())
	{
		today.GET("", h.Today)
		today.POST("/skip", h.Skip)
	}
}

// Today returns the device's recipe of the day, picking one if none is stored
// for the current date.
func (h *TodayHandler) Today(c *gin.Context) {
	h.respond(c, func() (*model.Recipe, error) {
		return h.picks.Today(c.Request.Context(), middleware.DeviceID(c), h.profile(c))
	})
}

// Skip replaces the current pick with another eligible recipe and remembers
// the skipped one so it is not shown again soon.
func (h *TodayHandler) Skip(c *gin.Context) {
	h.respond(c, func() (*model.Recipe, error) {
		return h.picks.Skip(c.Request.Context(), middleware.DeviceID(c), h.profile(c))
	})
}

func (h *TodayHandler) profile(c *gin.Context) *types.DietaryProfile {
	profile, _, err := h.profiles.GetProfile(c.Request.Context(), middleware.DeviceID(c))
	if err != nil {
		empty := types.EmptyProfile()
		return &empty
	}
	return &profile
}

func (h *TodayHandler) respond(c *gin.Context, pick func() (*model.Recipe, error)) {
	recipe, err := pick()
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoEligibleRecipes):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "no recipes match the current dietary profile",
				"code":  "no_eligible_recipes",
			})
		case errors.Is(err, service.ErrCatalogUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "recipe catalog is unavailable",
				"code":  "catalog_unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve today's recipe"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":   h.clock.DateKey(),
		"recipe": localizeRecipe(recipe, c.Query("lang")),
	})
}
