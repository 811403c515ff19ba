package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexmorbo/build-hipchat-notifier/application/dto"
	"github.com/alexmorbo/build-hipchat-notifier/application/port"
	"github.com/alexmorbo/build-hipchat-notifier/application/usecase"
	"github.com/alexmorbo/build-hipchat-notifier/pkg/logger"
)

// Covers one composition plus one 30s delivery attempt.
const buildRequestTimeout = 45 * time.Second

type BuildCompletedHandler interface {
	Execute(ctx context.Context, input dto.BuildCompletedInput) (*dto.NotifyOutput, error)
}

type BuildHandler struct {
	handleBuild BuildCompletedHandler
	logger      *slog.Logger
}

func NewBuildHandler(handleBuild BuildCompletedHandler, logger *slog.Logger) *BuildHandler {
	return &BuildHandler{handleBuild: handleBuild, logger: logger}
}

// HandleCompleted answers 200 whenever a notification was attempted, even if
// delivery failed; the outcome is in the body.
func (h *BuildHandler) HandleCompleted(c *gin.Context) {
	log := logger.FromContext(c.Request.Context(), h.logger)

	var input dto.BuildCompletedInput
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Warn("Failed to parse build payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), buildRequestTimeout)
	defer cancel()

	out, err := h.handleBuild.Execute(ctx, input)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, port.ErrJobNotConfigured):
			c.JSON(http.StatusNotFound, gin.H{"error": "job not configured"})
		default:
			log.Error("Build notification failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, out)
}
