package jobs

import (
	"context"
	"time"
)

const RejectStaleOrdersTask = "reject-stale-orders"

// LocalExpiryScheduler runs the stale order sweep in process once an order
// may have become stale.
type LocalExpiryScheduler struct {
	registry *Registry
	task     string
}

func NewLocalExpiryScheduler(registry *Registry, task string) *LocalExpiryScheduler {
	return &LocalExpiryScheduler{registry: registry, task: task}
}

func (s *LocalExpiryScheduler) ScheduleStaleCheck(_ context.Context, _ string, dueAt time.Time) error {
	return s.registry.RunAt(s.task, dueAt)
}
