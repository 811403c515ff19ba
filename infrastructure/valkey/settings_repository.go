package valkey

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/alexmorbo/build-hipchat-notifier/domain/notification"
	"github.com/alexmorbo/build-hipchat-notifier/pkg/logger"
)

const settingsKey = keyPrefix + "settings"

type settingsData struct {
	Server    string    `json:"server"`
	Token     string    `json:"token"`
	Room      string    `json:"room"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SettingsRepository stores the global chat defaults under a single key with
// no expiry.
type SettingsRepository struct {
	client *redis.Client
	logger *slog.Logger
}

func NewSettingsRepository(client *redis.Client, logger *slog.Logger) *SettingsRepository {
	return &SettingsRepository{
		client: client,
		logger: logger,
	}
}

func (r *SettingsRepository) Save(ctx context.Context, cfg notification.GlobalConfig) error {
	start := time.Now()

	jsonData, err := json.Marshal(settingsData{
		Server:    cfg.Server,
		Token:     cfg.Token,
		Room:      cfg.Room,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := r.client.Set(ctx, settingsKey, jsonData, 0).Err(); err != nil {
		duration := time.Since(start).Milliseconds()
		r.logger.Error("Redis SET failed",
			logger.RedisFieldsWithError("set", settingsKey, duration, err.Error()),
		)
		redisSetErr.Inc()
		return fmt.Errorf("redis set: %w", err)
	}

	duration := time.Since(start).Milliseconds()
	r.logger.Debug("Redis SET completed",
		logger.RedisFields("set", settingsKey, duration),
	)
	redisSetOK.Inc()
	redisSetDur.Update(float64(duration) / 1000)

	return nil
}

// Load returns notification.ErrNotFound when nothing was saved yet.
func (r *SettingsRepository) Load(ctx context.Context) (notification.GlobalConfig, error) {
	start := time.Now()

	result, err := r.client.Get(ctx, settingsKey).Result()
	if err != nil {
		duration := time.Since(start).Milliseconds()
		if errors.Is(err, redis.Nil) {
			r.logger.Debug("Redis GET miss",
				logger.RedisFields("get", settingsKey, duration),
			)
			redisGetMiss.Inc()
			return notification.GlobalConfig{}, notification.ErrNotFound
		}
		r.logger.Error("Redis GET failed",
			logger.RedisFieldsWithError("get", settingsKey, duration, err.Error()),
		)
		redisGetErr.Inc()
		return notification.GlobalConfig{}, fmt.Errorf("redis get: %w", err)
	}

	var data settingsData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return notification.GlobalConfig{}, fmt.Errorf("unmarshal settings: %w", err)
	}

	duration := time.Since(start).Milliseconds()
	r.logger.Debug("Redis GET completed",
		logger.RedisFields("get", settingsKey, duration),
	)
	redisGetOK.Inc()
	redisGetDur.Update(float64(duration) / 1000)

	return notification.GlobalConfig{
		Server: data.Server,
		Token:  data.Token,
		Room:   data.Room,
	}, nil
}

func (r *SettingsRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
