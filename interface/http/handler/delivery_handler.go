package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alexmorbo/build-hipchat-notifier/application/dto"
	"github.com/alexmorbo/build-hipchat-notifier/domain/notification"
	"github.com/alexmorbo/build-hipchat-notifier/pkg/logger"
)

type DeliveryFinder interface {
	Execute(ctx context.Context, jobName string, number int) (*dto.DeliveryOutput, error)
}

type DeliveryHandler struct {
	deliveries DeliveryFinder
	logger     *slog.Logger
}

func NewDeliveryHandler(deliveries DeliveryFinder, logger *slog.Logger) *DeliveryHandler {
	return &DeliveryHandler{deliveries: deliveries, logger: logger}
}

func (h *DeliveryHandler) Get(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("build"))
	if err != nil || number < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid build number"})
		return
	}

	out, err := h.deliveries.Execute(c.Request.Context(), c.Param("job"), number)
	if err != nil {
		if errors.Is(err, notification.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "delivery not found"})
			return
		}
		logger.FromContext(c.Request.Context(), h.logger).Error("Failed to load delivery",
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, out)
}
