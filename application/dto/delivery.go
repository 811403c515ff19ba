package dto

import (
	"time"

	"github.com/alexmorbo/build-hipchat-notifier/domain/notification"
)

type DeliveryOutput struct {
	ID        string    `json:"id"`
	Job       string    `json:"job"`
	Build     int       `json:"build"`
	Result    string    `json:"result"`
	State     string    `json:"state"`
	Room      string    `json:"room,omitempty"`
	Color     string    `json:"color"`
	Post      bool      `json:"post"`
	Notify    bool      `json:"notify"`
	CreatedAt time.Time `json:"created_at"`
}

func NewDeliveryOutput(d *notification.Delivery) DeliveryOutput {
	return DeliveryOutput{
		ID:        d.ID(),
		Job:       d.JobName(),
		Build:     d.Number(),
		Result:    d.Result(),
		State:     string(d.State()),
		Room:      d.Room(),
		Color:     string(d.Color()),
		Post:      d.Posted(),
		Notify:    d.Notified(),
		CreatedAt: d.CreatedAt(),
	}
}
