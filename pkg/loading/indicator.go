package loading

import (
	"sync"
	"time"
)

const (
	// DefaultTimeout is how long an indicator waits before flipping the
	// "still waiting" flag.
	DefaultTimeout = 10 * time.Second

	tickInterval = time.Second
)

// State is a read-only snapshot of an indicator.
type State struct {
	ElapsedSeconds int
	TimeoutReached bool
}

// Indicator tracks how long a load has been in flight. Elapsed seconds grow
// unbounded once per second; TimeoutReached flips false->true exactly once
// after the configured timeout. Stop is terminal: neither timer fires after
// it returns.
type Indicator struct {
	mu             sync.Mutex
	elapsedSeconds int
	timeoutReached bool

	timeout  time.Duration
	retime   chan time.Duration
	done     chan struct{}
	stopOnce sync.Once
}

// NewIndicator starts a new indicator. A non-positive timeout falls back to
// DefaultTimeout.
func NewIndicator(timeout time.Duration) *Indicator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	i := &Indicator{
		timeout: timeout,
		retime:  make(chan time.Duration),
		done:    make(chan struct{}),
	}
	go i.run()
	return i
}

func (i *Indicator) run() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	timer := time.NewTimer(i.timeout)
	defer timer.Stop()

	for {
		select {
		case <-ticker.C:
			i.mu.Lock()
			i.elapsedSeconds++
			i.mu.Unlock()
		case <-timer.C:
			i.mu.Lock()
			i.timeoutReached = true
			i.mu.Unlock()
		case d := <-i.retime:
			// Restart only the one-shot timer; elapsed seconds keep counting.
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(d)
		case <-i.done:
			return
		}
	}
}

// SetTimeout rearms the one-shot timer with a new duration. The reached flag
// is not reset; elapsed seconds are untouched. No-op after Stop.
func (i *Indicator) SetTimeout(d time.Duration) {
	if d <= 0 {
		d = DefaultTimeout
	}
	select {
	case i.retime <- d:
	case <-i.done:
	}
}

// Stop cancels both timers. Safe to call more than once.
func (i *Indicator) Stop() {
	i.stopOnce.Do(func() {
		close(i.done)
	})
}

func (i *Indicator) Elapsed() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.elapsedSeconds
}

func (i *Indicator) TimeoutReached() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.timeoutReached
}

func (i *Indicator) Snapshot() State {
	i.mu.Lock()
	defer i.mu.Unlock()
	return State{
		ElapsedSeconds: i.elapsedSeconds,
		TimeoutReached: i.timeoutReached,
	}
}
