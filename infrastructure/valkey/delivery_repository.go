package valkey

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/alexmorbo/build-hipchat-notifier/domain/build"
	"github.com/alexmorbo/build-hipchat-notifier/domain/notification"
	"github.com/alexmorbo/build-hipchat-notifier/pkg/logger"
)

const (
	deliveryKeyPrefix = keyPrefix + "delivery:"
	deliveryTTL       = 7 * 24 * time.Hour
)

type deliveryData struct {
	ID        string    `json:"id"`
	JobName   string    `json:"job_name"`
	Number    int       `json:"build_number"`
	Result    string    `json:"result"`
	State     string    `json:"state"`
	Room      string    `json:"room"`
	Color     string    `json:"color"`
	Posted    bool      `json:"posted"`
	Notified  bool      `json:"notified"`
	CreatedAt time.Time `json:"created_at"`
}

// DeliveryRepository keeps the latest delivery outcome per job build.
type DeliveryRepository struct {
	client *redis.Client
	logger *slog.Logger
}

func NewDeliveryRepository(client *redis.Client, logger *slog.Logger) *DeliveryRepository {
	return &DeliveryRepository{
		client: client,
		logger: logger,
	}
}

func deliveryKey(jobName string, number int) string {
	return deliveryKeyPrefix + jobName + ":" + strconv.Itoa(number)
}

func (r *DeliveryRepository) Save(ctx context.Context, d *notification.Delivery) error {
	key := deliveryKey(d.JobName(), d.Number())
	start := time.Now()

	data := deliveryData{
		ID:        d.ID(),
		JobName:   d.JobName(),
		Number:    d.Number(),
		Result:    d.Result(),
		State:     string(d.State()),
		Room:      d.Room(),
		Color:     string(d.Color()),
		Posted:    d.Posted(),
		Notified:  d.Notified(),
		CreatedAt: d.CreatedAt(),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal delivery data: %w", err)
	}

	if err := r.client.Set(ctx, key, jsonData, deliveryTTL).Err(); err != nil {
		duration := time.Since(start).Milliseconds()
		r.logger.Error("Redis SET failed",
			logger.RedisFieldsWithError("set", key, duration, err.Error()),
		)
		redisSetErr.Inc()
		return fmt.Errorf("redis set: %w", err)
	}

	duration := time.Since(start).Milliseconds()
	r.logger.Debug("Redis SET completed",
		logger.RedisFields("set", key, duration),
	)
	redisSetOK.Inc()
	redisSetDur.Update(float64(duration) / 1000)

	return nil
}

func (r *DeliveryRepository) Find(ctx context.Context, jobName string, number int) (*notification.Delivery, error) {
	key := deliveryKey(jobName, number)
	start := time.Now()

	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		duration := time.Since(start).Milliseconds()
		if errors.Is(err, redis.Nil) {
			r.logger.Debug("Redis GET miss",
				logger.RedisFields("get", key, duration),
			)
			redisGetMiss.Inc()
			return nil, notification.ErrNotFound
		}
		r.logger.Error("Redis GET failed",
			logger.RedisFieldsWithError("get", key, duration, err.Error()),
		)
		redisGetErr.Inc()
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var data deliveryData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, fmt.Errorf("unmarshal delivery data: %w", err)
	}

	duration := time.Since(start).Milliseconds()
	r.logger.Debug("Redis GET completed",
		logger.RedisFields("get", key, duration),
	)
	redisGetOK.Inc()
	redisGetDur.Update(float64(duration) / 1000)

	return notification.RestoreDelivery(
		data.ID,
		data.JobName,
		data.Number,
		data.Result,
		notification.State(data.State),
		data.Room,
		build.Color(data.Color),
		data.Posted,
		data.Notified,
		data.CreatedAt,
	), nil
}
