package workers

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/franny-sync/internal/logger"
)

func TestPeriodicTrigger_Fires(t *testing.T) {
	trigger := NewPeriodicTrigger(logger.Nop())
	defer trigger.Stop()

	var fired atomic.Int32
	require.NoError(t, trigger.Arm(time.Second, func() { fired.Add(1) }))
	assert.True(t, trigger.Armed())
	assert.Equal(t, time.Second, trigger.Interval())

	assert.Eventually(t, func() bool { return fired.Load() >= 1 }, 5*time.Second, 50*time.Millisecond)
}

func TestPeriodicTrigger_NextRun(t *testing.T) {
	trigger := NewPeriodicTrigger(logger.Nop())
	defer trigger.Stop()

	_, ok := trigger.NextRun()
	assert.False(t, ok)

	before := time.Now()
	require.NoError(t, trigger.Arm(10*time.Minute, func() {}))

	assert.Eventually(t, func() bool {
		next, ok := trigger.NextRun()
		return ok && next.After(before.Add(9*time.Minute)) && next.Before(before.Add(11*time.Minute))
	}, 2*time.Second, 10*time.Millisecond)
}

func TestPeriodicTrigger_RearmReplaces(t *testing.T) {
	trigger := NewPeriodicTrigger(logger.Nop())
	defer trigger.Stop()

	var first, second atomic.Int32
	require.NoError(t, trigger.Arm(time.Second, func() { first.Add(1) }))
	require.NoError(t, trigger.Arm(time.Second, func() { second.Add(1) }))

	assert.Eventually(t, func() bool { return second.Load() >= 1 }, 5*time.Second, 50*time.Millisecond)
	assert.Zero(t, first.Load(), "the replaced schedule never fires")
}

func TestPeriodicTrigger_StopIsIdempotent(t *testing.T) {
	trigger := NewPeriodicTrigger(logger.Nop())

	var fired atomic.Int32
	require.NoError(t, trigger.Arm(time.Second, func() { fired.Add(1) }))
	trigger.Stop()
	trigger.Stop()

	assert.False(t, trigger.Armed())
	assert.Zero(t, trigger.Interval())
	time.Sleep(1500 * time.Millisecond)
	assert.Zero(t, fired.Load())
}

func TestPeriodicTrigger_InvalidInterval(t *testing.T) {
	trigger := NewPeriodicTrigger(logger.Nop())

	assert.ErrorIs(t, trigger.Arm(0, func() {}), ErrInvalidInterval)
	assert.ErrorIs(t, trigger.Arm(-time.Minute, func() {}), ErrInvalidInterval)
	assert.False(t, trigger.Armed())
}
