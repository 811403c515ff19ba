package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexmorbo/build-hipchat-notifier/application/dto"
	"github.com/alexmorbo/build-hipchat-notifier/pkg/logger"
)

type SettingsManager interface {
	Get(ctx context.Context) (*dto.SettingsOutput, error)
	Update(ctx context.Context, input dto.SettingsInput) (*dto.SettingsOutput, error)
}

type SettingsHandler struct {
	settings SettingsManager
	logger   *slog.Logger
}

func NewSettingsHandler(settings SettingsManager, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{settings: settings, logger: logger}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	out, err := h.settings.Get(c.Request.Context())
	if err != nil {
		logger.FromContext(c.Request.Context(), h.logger).Error("Failed to load settings",
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var input dto.SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	out, err := h.settings.Update(c.Request.Context(), input)
	if err != nil {
		logger.FromContext(c.Request.Context(), h.logger).Error("Failed to update settings",
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *SettingsHandler) Defaults(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewDefaultsOutput())
}
