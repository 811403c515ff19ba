package usecase

import (
	"context"
	"fmt"

	"github.com/alexmorbo/build-hipchat-notifier/application/dto"
	"github.com/alexmorbo/build-hipchat-notifier/domain/notification"
)

type GetDeliveryUseCase struct {
	deliveries notification.DeliveryRepository
}

func NewGetDeliveryUseCase(deliveries notification.DeliveryRepository) *GetDeliveryUseCase {
	return &GetDeliveryUseCase{deliveries: deliveries}
}

func (uc *GetDeliveryUseCase) Execute(ctx context.Context, jobName string, number int) (*dto.DeliveryOutput, error) {
	d, err := uc.deliveries.Find(ctx, jobName, number)
	if err != nil {
		return nil, fmt.Errorf("find delivery: %w", err)
	}
	out := dto.NewDeliveryOutput(d)
	return &out, nil
}
