package notification

import (
	"time"

	"github.com/alexmorbo/build-hipchat-notifier/domain/build"
)

// Delivery records the outcome of one invocation for a build.
type Delivery struct {
	id        string
	jobName   string
	number    int
	result    string
	state     State
	room      string
	color     build.Color
	posted    bool
	notified  bool
	createdAt time.Time
}

func NewDelivery(id, jobName string, number int, result build.Result, state State, room string, posted, notified bool) *Delivery {
	_, color := build.Classify(result)
	return &Delivery{
		id:        id,
		jobName:   jobName,
		number:    number,
		result:    result.String(),
		state:     state,
		room:      room,
		color:     color,
		posted:    posted,
		notified:  notified,
		createdAt: time.Now(),
	}
}

func RestoreDelivery(id, jobName string, number int, result string, state State, room string, color build.Color, posted, notified bool, createdAt time.Time) *Delivery {
	return &Delivery{
		id:        id,
		jobName:   jobName,
		number:    number,
		result:    result,
		state:     state,
		room:      room,
		color:     color,
		posted:    posted,
		notified:  notified,
		createdAt: createdAt,
	}
}

func (d *Delivery) ID() string           { return d.id }
func (d *Delivery) JobName() string      { return d.jobName }
func (d *Delivery) Number() int          { return d.number }
func (d *Delivery) Result() string       { return d.result }
func (d *Delivery) State() State         { return d.state }
func (d *Delivery) Room() string         { return d.room }
func (d *Delivery) Color() build.Color   { return d.color }
func (d *Delivery) Posted() bool         { return d.posted }
func (d *Delivery) Notified() bool       { return d.notified }
func (d *Delivery) CreatedAt() time.Time { return d.createdAt }
