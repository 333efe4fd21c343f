// File: handlers/settings.go
package handlers

import (
	"errors"
	"net/http"

	settingsRepo "barberpro/database/repository/settings"
	"barberpro/models"
	"barberpro/services/schedule"
	"barberpro/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SettingsHandler serves the shop's singleton configuration. A corrupt
// schedule is repaired on read, not surfaced as an error.
type SettingsHandler struct {
	Repo   settingsRepo.SettingsRepository
	Logger *zap.Logger
}

func NewSettingsHandler(repo settingsRepo.SettingsRepository, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{Repo: repo, Logger: logger}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	settings, err := h.Repo.Get(ctx)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		settings = &models.ShopSettings{ShopName: "BarberPro Shop"}
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load settings", err.Error())
		return
	}

	if err := schedule.Validate(settings.Schedule); err != nil {
		h.Logger.Warn("settings: repairing corrupt weekly schedule", zap.Error(err))
		settings.Schedule = schedule.DefaultWeeklySchedule()
		if err := h.Repo.Upsert(ctx, *settings); err != nil {
			h.Logger.Error("settings: failed to persist schedule repair", zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var settings models.ShopSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid settings", err.Error())
		return
	}
	if err := schedule.Validate(settings.Schedule); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Incomplete weekly schedule", err.Error())
		return
	}

	if err := h.Repo.Upsert(c.Request.Context(), settings); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save settings", err.Error())
		return
	}
	c.JSON(http.StatusOK, settings)
}
