package workers

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/MKhiriev/franny-sync/internal/logger"
)

// PeriodicTrigger calls a function on a fixed interval until stopped.
// Re-arming replaces the previous schedule.
type PeriodicTrigger struct {
	mu       sync.Mutex
	cron     *cron.Cron
	entryID  cron.EntryID
	interval time.Duration
	logger   *logger.Logger
}

func NewPeriodicTrigger(log *logger.Logger) *PeriodicTrigger {
	return &PeriodicTrigger{logger: log}
}

// Arm schedules fire every interval, the first call one interval from now.
// fire runs on the cron goroutine and should return quickly.
func (t *PeriodicTrigger) Arm(interval time.Duration, fire func()) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()

	c := cron.New(
		cron.WithLogger(cron.PrintfLogger(t.logger)),
		cron.WithChain(cron.Recover(cron.PrintfLogger(t.logger)), cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	t.entryID = c.Schedule(cron.Every(interval), cron.FuncJob(fire))
	c.Start()

	t.cron = c
	t.interval = interval
	t.logger.Info().Dur("interval", interval).Msg("periodic trigger armed")
	return nil
}

// Stop cancels the schedule. It does not wait for a fire in progress.
// Stopping a stopped trigger does nothing.
func (t *PeriodicTrigger) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cron != nil {
		t.logger.Info().Msg("periodic trigger stopped")
	}
	t.stopLocked()
}

func (t *PeriodicTrigger) stopLocked() {
	if t.cron == nil {
		return
	}
	t.cron.Stop()
	t.cron = nil
	t.entryID = 0
	t.interval = 0
}

// Armed reports whether a schedule is active.
func (t *PeriodicTrigger) Armed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cron != nil
}

// Interval is the active period, zero when disarmed.
func (t *PeriodicTrigger) Interval() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.interval
}

// NextRun is when fire is next due. The boolean is false when disarmed.
func (t *PeriodicTrigger) NextRun() (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cron == nil {
		return time.Time{}, false
	}
	entry := t.cron.Entry(t.entryID)
	if !entry.Valid() || entry.Next.IsZero() {
		return time.Time{}, false
	}
	return entry.Next, true
}
