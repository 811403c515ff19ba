package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alexmorbo/build-hipchat-notifier/application/dto"
	"github.com/alexmorbo/build-hipchat-notifier/application/port"
	"github.com/alexmorbo/build-hipchat-notifier/domain/build"
	"github.com/alexmorbo/build-hipchat-notifier/domain/notification"
	"github.com/alexmorbo/build-hipchat-notifier/pkg/logger"
)

var ErrInvalidInput = errors.New("invalid input")

// HandleBuildCompletedUseCase feeds a build-completed event through
// NotifyBuildUseCase using the job's configuration and the current global
// settings, then records the outcome.
type HandleBuildCompletedUseCase struct {
	jobs       port.JobConfigProvider
	settings   port.SettingsProvider
	deliveries notification.DeliveryRepository
	notify     *NotifyBuildUseCase
	logger     *slog.Logger
}

// NewHandleBuildCompletedUseCase accepts a nil deliveries repository, in
// which case outcomes are not recorded.
func NewHandleBuildCompletedUseCase(
	jobs port.JobConfigProvider,
	settings port.SettingsProvider,
	deliveries notification.DeliveryRepository,
	notify *NotifyBuildUseCase,
	logger *slog.Logger,
) *HandleBuildCompletedUseCase {
	return &HandleBuildCompletedUseCase{
		jobs:       jobs,
		settings:   settings,
		deliveries: deliveries,
		notify:     notify,
		logger:     logger,
	}
}

func (uc *HandleBuildCompletedUseCase) Execute(ctx context.Context, input dto.BuildCompletedInput) (*dto.NotifyOutput, error) {
	result, err := build.ParseResult(input.Result)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	bctx, err := build.NewContext(input.Job, input.BuildNumber, result, input.URL, input.Workspace, input.Env)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	log := logger.FromContext(ctx, uc.logger)
	log.Info("Build completed",
		logger.BuildFields(bctx.JobName(), bctx.Number(), result.String()),
	)
	buildsReceivedCounter(result.String()).Inc()

	jobCfg, err := uc.jobs.NotifierConfig(bctx.JobName())
	if err != nil {
		return nil, fmt.Errorf("job config: %w", err)
	}

	global, err := uc.settings.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	out, err := uc.notify.Execute(ctx, jobCfg, global, bctx)
	if err != nil {
		return nil, err
	}

	out.DeliveryID = uuid.NewString()
	uc.record(ctx, log, out, bctx)

	return out, nil
}

func (uc *HandleBuildCompletedUseCase) record(ctx context.Context, log *slog.Logger, out *dto.NotifyOutput, bctx *build.Context) {
	if uc.deliveries == nil {
		return
	}

	d := notification.NewDelivery(
		out.DeliveryID,
		bctx.JobName(),
		bctx.Number(),
		bctx.Result(),
		notification.State(out.State),
		out.Room,
		out.Post,
		out.Notify,
	)
	if err := uc.deliveries.Save(ctx, d); err != nil {
		log.Warn("Failed to record delivery",
			logger.BuildFields(bctx.JobName(), bctx.Number(), bctx.Result().String()),
			slog.String("error", err.Error()),
		)
	}
}
