package engine

import (
	"sync"
	"time"

	"github.com/nurseguard/backend/pkg/model"
)

// Default critical-escalation parameters.
const (
	DefaultCriticalWindow    = 30 * time.Second
	DefaultCriticalThreshold = 3
	DefaultDisplayTimeout    = 15 * time.Second
)

// CriticalTracker keeps a sliding window of recent alert timestamps and
// raises the critical flag when alert frequency exceeds the threshold inside
// the window. The flag auto-clears after the display timeout unless dismissed
// earlier. Dismissal does not clear the underlying window, so a burst right
// after a dismiss can re-trigger criticality immediately.
type CriticalTracker struct {
	mu             sync.Mutex
	clock          Clock
	window         time.Duration
	threshold      int
	displayTimeout time.Duration

	timestamps []time.Time
	critical   bool
	clearTimer Timer
}

// NewCriticalTracker creates a tracker. Non-positive parameters fall back to
// the defaults.
func NewCriticalTracker(clock Clock, window time.Duration, threshold int, displayTimeout time.Duration) *CriticalTracker {
	if window <= 0 {
		window = DefaultCriticalWindow
	}
	if threshold <= 0 {
		threshold = DefaultCriticalThreshold
	}
	if displayTimeout <= 0 {
		displayTimeout = DefaultDisplayTimeout
	}
	return &CriticalTracker{
		clock:          clock,
		window:         window,
		threshold:      threshold,
		displayTimeout: displayTimeout,
	}
}

// Record notes a new alert: prune entries older than the window, append now,
// and raise the critical flag once the window holds at least the threshold.
// The auto-clear timer is armed on the false→true transition only.
func (t *CriticalTracker) Record() {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	t.pruneLocked(now)
	t.timestamps = append(t.timestamps, now)

	if len(t.timestamps) >= t.threshold && !t.critical {
		t.critical = true
		t.clearTimer = t.clock.AfterFunc(t.displayTimeout, t.autoClear)
	}
}

// Dismiss clears the critical flag early. The timestamp window is kept, so
// criticality can re-trigger on the very next alert. A no-op when the flag is
// already clear.
func (t *CriticalTracker) Dismiss() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.critical {
		return
	}
	t.critical = false
	if t.clearTimer != nil {
		t.clearTimer.Stop()
		t.clearTimer = nil
	}
}

// State returns the current flag and the live window count.
func (t *CriticalTracker) State() model.CriticalState {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pruneLocked(t.clock.Now())
	return model.CriticalState{
		CriticalMode: t.critical,
		WindowCount:  len(t.timestamps),
	}
}

func (t *CriticalTracker) autoClear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.critical = false
	t.clearTimer = nil
}

func (t *CriticalTracker) pruneLocked(now time.Time) {
	cutoff := now.Add(-t.window)
	kept := t.timestamps[:0]
	for _, ts := range t.timestamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	t.timestamps = kept
}
