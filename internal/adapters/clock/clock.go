package clock

import (
	"time"

	"ideaindex/internal/ports"
)

// Scheduler implements ports.Scheduler on top of time.AfterFunc
type Scheduler struct{}

// Ensure Scheduler implements ports.Scheduler
var _ ports.Scheduler = Scheduler{}

// NewScheduler returns the wall-clock scheduler
func NewScheduler() Scheduler {
	return Scheduler{}
}

// AfterFunc runs f on its own goroutine once d has elapsed
func (Scheduler) AfterFunc(d time.Duration, f func()) ports.Timer {
	return time.AfterFunc(d, f)
}
