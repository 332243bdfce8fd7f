package workers

import "errors"

var (
	// ErrSyncInFlight is returned by Submit while another sync job runs.
	ErrSyncInFlight = errors.New("a sync is already in progress")
	// ErrPoolSaturated is returned when every worker is busy.
	ErrPoolSaturated = errors.New("worker pool is saturated")
	// ErrSchedulerClosed is returned after Shutdown.
	ErrSchedulerClosed = errors.New("scheduler is shut down")
	// ErrInvalidInterval is returned by Arm for a non-positive interval.
	ErrInvalidInterval = errors.New("trigger interval must be positive")
)
