package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/alexmorbo/build-hipchat-notifier/application/dto"
	"github.com/alexmorbo/build-hipchat-notifier/application/port"
	"github.com/alexmorbo/build-hipchat-notifier/domain/build"
	"github.com/alexmorbo/build-hipchat-notifier/domain/notification"
	"github.com/alexmorbo/build-hipchat-notifier/pkg/logger"
)

const (
	LogInvalidSettings    = "HipChatNotifier InvalidSettings."
	LogPostDisabled       = "HipChatNotifier Post disabled for this result."
	LogNotificationOK     = "HipChat Notification OK"
	LogNotificationFailed = "HipChat Notification Failed"
)

// NotifyBuildUseCase runs one notification for a completed build:
// resolve the target, apply the post/notify policy, compose and send.
// It never changes the build outcome; the only error it returns is the
// caller's cancellation.
type NotifyBuildUseCase struct {
	composer port.MessageComposer
	client   port.ChatClient
	logger   *slog.Logger
}

func NewNotifyBuildUseCase(composer port.MessageComposer, client port.ChatClient, logger *slog.Logger) *NotifyBuildUseCase {
	return &NotifyBuildUseCase{
		composer: composer,
		client:   client,
		logger:   logger,
	}
}

func (uc *NotifyBuildUseCase) Execute(
	ctx context.Context,
	job notification.NotifierConfig,
	global notification.GlobalConfig,
	bctx *build.Context,
) (*dto.NotifyOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("notify build: %w", err)
	}

	log := logger.FromContext(ctx, uc.logger)
	buildAttr := logger.BuildFields(bctx.JobName(), bctx.Number(), bctx.Result().String())

	target := notification.Resolve(job, global)
	post := notification.ShouldPost(bctx.Result(), job)
	notify := notification.ShouldNotify(bctx.Result(), job)
	_, color := build.Classify(bctx.Result())

	out := &dto.NotifyOutput{
		Attempted: true,
		Post:      post,
		Notify:    notify,
		Room:      target.Room,
		Color:     string(color),
	}
	out.Log("HipChat Post   : " + strconv.FormatBool(post))
	out.Log("HipChat Notify : " + strconv.FormatBool(notify))

	if !notification.DispatchAllowed(target) {
		out.State = string(notification.StateSkippedInvalidSettings)
		out.Log(LogInvalidSettings)
		log.Warn("Notification skipped, token or room not configured",
			buildAttr,
			logger.ApplicationFields("notification_skipped",
				slog.Bool("token_set", target.Token != ""),
				slog.Bool("room_set", target.Room != ""),
			),
		)
		notificationsCounter(string(notification.StateSkippedInvalidSettings)).Inc()
		return out, nil
	}

	if !post {
		out.State = string(notification.StateSkippedByPolicy)
		out.Log(LogPostDisabled)
		log.Info("Notification skipped by job policy",
			buildAttr,
			logger.ApplicationFields("notification_skipped",
				slog.String("room", target.Room),
			),
		)
		notificationsCounter(string(notification.StateSkippedByPolicy)).Inc()
		return out, nil
	}

	composition := uc.composer.Compose(ctx, job, bctx)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("notify build: %w", err)
	}
	out.Source = composition.Source
	if composition.ReadErr != nil {
		out.Log(composition.ReadErr.Error())
		log.Warn("Message file unreadable, using template",
			buildAttr,
			logger.ApplicationFields("message_file_fallback",
				slog.String("path", job.Source.Path()),
				slog.String("error", composition.ReadErr.Error()),
			),
		)
		composerFallbackCounter.Inc()
	}

	msg := notification.Message{
		Room:   target.Room,
		Color:  color,
		Body:   composition.Body,
		Notify: notify,
	}

	// Once the request is out the outcome is reported even if ctx ends.
	ok := uc.client.Send(ctx, target.Server, target.Token, msg)

	out.Delivered = ok
	if ok {
		out.State = string(notification.StateSent)
		out.Log(LogNotificationOK)
		log.Info("Notification delivered",
			buildAttr,
			logger.ApplicationFields("notification_sent",
				slog.String("room", target.Room),
				slog.String("color", string(color)),
				slog.Bool("notify", notify),
			),
		)
	} else {
		out.State = string(notification.StateFailed)
		out.Log(LogNotificationFailed)
		log.Error("Notification delivery failed",
			buildAttr,
			logger.ApplicationFields("notification_failed",
				slog.String("room", target.Room),
			),
		)
	}
	notificationsCounter(out.State).Inc()

	return out, nil
}
