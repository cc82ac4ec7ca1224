package loading

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIndicatorTimeoutAndTick(t *testing.T) {
	ind := NewIndicator(1000 * time.Millisecond)
	defer ind.Stop()

	time.Sleep(1100 * time.Millisecond)

	state := ind.Snapshot()
	assert.True(t, state.TimeoutReached, "timeout flag should flip after 1s")
	assert.GreaterOrEqual(t, state.ElapsedSeconds, 1)
}

func TestIndicatorStopFreezesState(t *testing.T) {
	ind := NewIndicator(1000 * time.Millisecond)

	time.Sleep(1100 * time.Millisecond)
	ind.Stop()
	// Stop twice must be safe.
	ind.Stop()

	frozen := ind.Snapshot()
	time.Sleep(1100 * time.Millisecond)
	assert.Equal(t, frozen, ind.Snapshot(), "no state changes after Stop")
}

func TestIndicatorInitialState(t *testing.T) {
	ind := NewIndicator(0)
	defer ind.Stop()

	state := ind.Snapshot()
	assert.Equal(t, 0, state.ElapsedSeconds)
	assert.False(t, state.TimeoutReached)
}

func TestIndicatorSetTimeoutRestartsOneShotOnly(t *testing.T) {
	ind := NewIndicator(10 * time.Second)
	defer ind.Stop()

	// Shorten the timer mid-flight; it should fire well before 10s.
	ind.SetTimeout(200 * time.Millisecond)
	time.Sleep(400 * time.Millisecond)
	assert.True(t, ind.TimeoutReached())
}

func TestIndicatorSetTimeoutAfterStopIsNoop(t *testing.T) {
	ind := NewIndicator(time.Second)
	ind.Stop()

	done := make(chan struct{})
	go func() {
		ind.SetTimeout(10 * time.Millisecond)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("SetTimeout blocked after Stop")
	}
	assert.False(t, ind.TimeoutReached())
}
