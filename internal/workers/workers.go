package workers

import (
	"context"

	"github.com/MKhiriev/franny-sync/internal/config"
	"github.com/MKhiriev/franny-sync/internal/logger"
)

// Workers groups the background machinery of one running client.
type Workers struct {
	Scheduler *TaskScheduler
	Trigger   *PeriodicTrigger
}

func NewWorkers(cfg config.Workers, log *logger.Logger) *Workers {
	return &Workers{
		Scheduler: NewTaskScheduler(cfg.PoolSize, log),
		Trigger:   NewPeriodicTrigger(log),
	}
}

// Shutdown disarms the trigger, then drains the scheduler.
func (w *Workers) Shutdown(ctx context.Context) error {
	w.Trigger.Stop()
	return w.Scheduler.Shutdown(ctx)
}
