package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/alexmorbo/build-hipchat-notifier/application/usecase"
	"github.com/alexmorbo/build-hipchat-notifier/infrastructure/composer"
	"github.com/alexmorbo/build-hipchat-notifier/infrastructure/config"
	"github.com/alexmorbo/build-hipchat-notifier/infrastructure/hipchat"
	"github.com/alexmorbo/build-hipchat-notifier/infrastructure/valkey"
	httpInterface "github.com/alexmorbo/build-hipchat-notifier/interface/http"
	"github.com/alexmorbo/build-hipchat-notifier/interface/http/handler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the webhook and settings API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		log.Info("starting hcnotifier", "addr", cfg.Server.Addr())

		jobs, err := config.NewJobStore(cfg.ConfigPath, log.With("component", "job_store"))
		if err != nil {
			return err
		}
		log.Info("jobs file loaded", "path", cfg.ConfigPath, "jobs", jobs.JobCount())

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		redisClient, err := valkey.NewClient(ctx, cfg.Redis)
		cancel()
		if err != nil {
			return err
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("failed to close redis client", "error", err)
			}
		}()
		log.Info("connected to valkey", "addr", cfg.Redis.Addr)

		settingsRepo := valkey.NewSettingsRepository(redisClient, log.With("component", "valkey"))
		deliveryRepo := valkey.NewDeliveryRepository(redisClient, log.With("component", "valkey"))

		settingsUC := usecase.NewSettingsUseCase(settingsRepo, cfg.HipChat.GlobalConfig(), log.With("component", "settings_usecase"))
		ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		err = settingsUC.EnsureDefaults(ctx)
		cancel()
		if err != nil {
			return err
		}

		notifyUC := usecase.NewNotifyBuildUseCase(
			composer.NewComposer(),
			hipchat.NewClient(log.With("component", "hipchat_client")),
			log.With("component", "notify_build_usecase"),
		)
		handleBuildUC := usecase.NewHandleBuildCompletedUseCase(
			jobs,
			settingsUC,
			deliveryRepo,
			notifyUC,
			log.With("component", "handle_build_usecase"),
		)
		getDeliveryUC := usecase.NewGetDeliveryUseCase(deliveryRepo)

		gin.SetMode(gin.ReleaseMode)
		router := httpInterface.NewRouter(
			log,
			handler.NewBuildHandler(handleBuildUC, log.With("component", "build_handler")),
			handler.NewSettingsHandler(settingsUC, log.With("component", "settings_handler")),
			handler.NewDeliveryHandler(getDeliveryUC, log.With("component", "delivery_handler")),
			handler.NewHealthHandler(settingsRepo),
		)

		srv := &http.Server{
			Addr:              cfg.Server.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       120 * time.Second,
			MaxHeaderBytes:    1 << 20,
		}

		watchCtx, stopWatch := context.WithCancel(context.Background())
		defer stopWatch()
		if cfg.Watch.Enabled {
			go func() {
				if err := jobs.Watch(watchCtx, cfg.Watch.Debounce); err != nil {
					log.Error("jobs file watcher stopped", "error", err)
				}
			}()
		}

		errCh := make(chan error, 1)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		log.Info("server started", "addr", cfg.Server.Addr())

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		var serveErr error
		select {
		case serveErr = <-errCh:
			log.Error("server error", "error", serveErr)
		case <-quit:
			log.Info("shutting down...")
		}

		stopWatch()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server forced to shutdown", "error", err)
		}

		log.Info("server stopped")
		return serveErr
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
