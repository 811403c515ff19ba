package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexmorbo/build-hipchat-notifier/application/dto"
	"github.com/alexmorbo/build-hipchat-notifier/domain/notification"
	"github.com/alexmorbo/build-hipchat-notifier/pkg/logger"
)

// SettingsUseCase administers the global chat defaults. Values from the
// environment act as the seed until something is saved.
type SettingsUseCase struct {
	repo   notification.SettingsRepository
	seed   notification.GlobalConfig
	logger *slog.Logger
}

func NewSettingsUseCase(repo notification.SettingsRepository, seed notification.GlobalConfig, logger *slog.Logger) *SettingsUseCase {
	return &SettingsUseCase{
		repo:   repo,
		seed:   seed,
		logger: logger,
	}
}

// EnsureDefaults stores the seed when no settings were saved yet.
func (uc *SettingsUseCase) EnsureDefaults(ctx context.Context) error {
	_, err := uc.repo.Load(ctx)
	if err == nil {
		uc.logger.Info("Global settings already stored",
			logger.ApplicationFields("settings_exist"),
		)
		return nil
	}
	if !errors.Is(err, notification.ErrNotFound) {
		return fmt.Errorf("load settings: %w", err)
	}

	if err := uc.repo.Save(ctx, uc.seed); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}

	uc.logger.Info("Global settings seeded from environment",
		logger.ApplicationFields("settings_seeded",
			slog.String("server", uc.seed.Server),
			slog.Bool("token_set", uc.seed.Token != ""),
			slog.Bool("room_set", uc.seed.Room != ""),
		),
	)
	return nil
}

// Load returns the stored settings, or the seed when none are stored.
func (uc *SettingsUseCase) Load(ctx context.Context) (notification.GlobalConfig, error) {
	cfg, err := uc.repo.Load(ctx)
	if errors.Is(err, notification.ErrNotFound) {
		return uc.seed, nil
	}
	if err != nil {
		return notification.GlobalConfig{}, fmt.Errorf("load settings: %w", err)
	}
	return cfg, nil
}

func (uc *SettingsUseCase) Get(ctx context.Context) (*dto.SettingsOutput, error) {
	cfg, err := uc.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := dto.NewSettingsOutput(cfg)
	return &out, nil
}

// Update replaces the stored settings. The room is always replaced. An empty
// server keeps the current one; an empty token keeps the current token so it
// need not be resent, unless ClearToken is set.
func (uc *SettingsUseCase) Update(ctx context.Context, input dto.SettingsInput) (*dto.SettingsOutput, error) {
	current, err := uc.Load(ctx)
	if err != nil {
		return nil, err
	}

	cfg := input.ToGlobalConfig()
	if cfg.Server == "" {
		cfg.Server = current.Server
	}
	if cfg.Token == "" && !input.ClearToken {
		cfg.Token = current.Token
	}

	if err := uc.repo.Save(ctx, cfg); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}

	logger.FromContext(ctx, uc.logger).Info("Global settings updated",
		logger.ApplicationFields("settings_updated",
			slog.String("server", cfg.Server),
			slog.String("room", cfg.Room),
			slog.Bool("token_changed", cfg.Token != current.Token),
		),
	)
	settingsUpdatedCounter.Inc()

	out := dto.NewSettingsOutput(cfg)
	return &out, nil
}
