package notification

import "context"

// SettingsRepository persists the global defaults on behalf of the host.
type SettingsRepository interface {
	Load(ctx context.Context) (GlobalConfig, error)
	Save(ctx context.Context, cfg GlobalConfig) error
}

type DeliveryRepository interface {
	Save(ctx context.Context, d *Delivery) error
	Find(ctx context.Context, jobName string, number int) (*Delivery, error)
}
