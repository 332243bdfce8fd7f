// Package workers runs sync jobs off the control goroutine.
//
// A [TaskScheduler] owns a small bounded pool and delivers exactly one
// [models.SyncResult] per submitted job on its results channel. A
// [PeriodicTrigger] fires a callback on a fixed interval for unattended sync.
package workers

import (
	"context"

	"github.com/MKhiriev/franny-sync/models"
)

// Job is one unit of sync work. It receives the scheduler's context, which
// is cancelled on Shutdown.
type Job func(ctx context.Context) models.SyncResult

// Task is background I/O with no result to deliver, such as persisting
// settings.
type Task func(ctx context.Context) error
