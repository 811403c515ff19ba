package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/alexmorbo/build-hipchat-notifier/interface/http/handler"
	"github.com/alexmorbo/build-hipchat-notifier/interface/http/middleware"
)

const maxBodyBytes = 1 << 20

func NewRouter(
	log *slog.Logger,
	buildHandler *handler.BuildHandler,
	settingsHandler *handler.SettingsHandler,
	deliveryHandler *handler.DeliveryHandler,
	healthHandler *handler.HealthHandler,
) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery(log))

	// Probes and scraping skip request logging.
	router.GET("/health/live", healthHandler.Live)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/metrics", healthHandler.Metrics)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RequestID())
	v1.Use(middleware.BodyLimit(maxBodyBytes))
	v1.Use(middleware.Metrics())
	v1.Use(middleware.Logging(log))
	{
		v1.POST("/builds/completed", buildHandler.HandleCompleted)
		v1.GET("/settings", settingsHandler.Get)
		v1.PUT("/settings", settingsHandler.Update)
		v1.GET("/defaults", settingsHandler.Defaults)
		v1.GET("/deliveries/:job/:build", deliveryHandler.Get)
	}

	return router
}
