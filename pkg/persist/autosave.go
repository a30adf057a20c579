package persist

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/rikardjonsson/pylon/pkg/grid"
)

// DefaultAutosaveDelay is the debounce window between the last grid change
// and the write it triggers.
const DefaultAutosaveDelay = 2 * time.Second

// =============================================================================
// Autosaver
// =============================================================================

// Autosaver coalesces bursts of grid mutations into a single delayed write.
// Each Request captures the manager's state immediately (on the caller's
// goroutine, so no concurrent manager access happens later) and restarts the
// debounce timer; when the timer fires, the most recent capture is written
// under AutosaveName. A new request while a save is pending replaces the
// pending snapshot. A save that has already started always completes.
type Autosaver struct {
	persister *Persister
	delay     time.Duration
	logger    *log.Logger

	mu       sync.Mutex
	timer    *time.Timer
	pending  *Snapshot
	stopped  bool
	inflight sync.WaitGroup
}

// NewAutosaver creates an autosaver writing through the given persister.
// A non-positive delay falls back to DefaultAutosaveDelay.
func NewAutosaver(p *Persister, delay time.Duration, logger *log.Logger) *Autosaver {
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Autosaver{persister: p, delay: delay, logger: logger}
}

// Request schedules an autosave of the manager's current state. The state is
// captured now; the write happens after the debounce delay unless another
// request supersedes it first.
func (a *Autosaver) Request(m *grid.Manager) {
	snap := Capture(m, AutosaveName)

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped {
		return
	}

	a.pending = snap
	if a.timer == nil {
		a.timer = time.AfterFunc(a.delay, a.fire)
		return
	}
	a.timer.Reset(a.delay)
}

// fire runs on the timer goroutine and writes the pending snapshot.
func (a *Autosaver) fire() {
	a.mu.Lock()
	snap := a.pending
	a.pending = nil
	if snap != nil {
		a.inflight.Add(1)
	}
	a.mu.Unlock()
	if snap == nil {
		return
	}
	defer a.inflight.Done()
	a.save(snap)
}

func (a *Autosaver) save(snap *Snapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := a.persister.SaveSnapshot(ctx, snap); err != nil {
		a.logger.Error("autosave failed", "err", err)
		return
	}
	a.logger.Debug("autosaved layout", "items", len(snap.Items))
}

// Flush writes any pending snapshot immediately and waits for in-flight
// saves to finish. Call on clean shutdown so the last burst of edits is not
// lost to the debounce window.
func (a *Autosaver) Flush() {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
	}
	snap := a.pending
	a.pending = nil
	a.mu.Unlock()

	if snap != nil {
		a.save(snap)
	}
	a.inflight.Wait()
}

// Stop cancels any pending save, waits for in-flight saves to complete, and
// rejects further requests.
func (a *Autosaver) Stop() {
	a.mu.Lock()
	a.stopped = true
	if a.timer != nil {
		a.timer.Stop()
	}
	a.pending = nil
	a.mu.Unlock()
	a.inflight.Wait()
}
