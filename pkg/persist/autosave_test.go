package persist_test

import (
	"context"
	"testing"
	"time"

	"github.com/rikardjonsson/pylon/pkg/persist"
	"github.com/rikardjonsson/pylon/pkg/widget"
)

func waitForAutosave(t *testing.T, p *persist.Persister, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		var n int
		for _, s := range p.List() {
			if s.IsAutosave() {
				n = len(s.Items)
			}
		}
		if n == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("autosave with %d items never appeared", want)
}

func TestAutosaveDebounce(t *testing.T) {
	p := newPersister(t)
	m := newManager(t)
	a := persist.NewAutosaver(p, 30*time.Millisecond, nil)
	defer a.Stop()

	// A burst of requests within the debounce window coalesces into one
	// write of the latest state.
	addWidget(t, m, "Clock", widget.CategoryClock)
	a.Request(m)
	addWidget(t, m, "Mail", widget.CategoryMail)
	a.Request(m)
	addWidget(t, m, "Crypto", widget.CategoryCrypto)
	a.Request(m)

	waitForAutosave(t, p, 3)

	var autosaves int
	for _, s := range p.List() {
		if s.IsAutosave() {
			autosaves++
		}
	}
	if autosaves != 1 {
		t.Errorf("found %d autosave snapshots, want 1", autosaves)
	}
}

func TestAutosaveRequestRestartsTimer(t *testing.T) {
	p := newPersister(t)
	m := newManager(t)
	a := persist.NewAutosaver(p, 150*time.Millisecond, nil)
	defer a.Stop()

	addWidget(t, m, "Clock", widget.CategoryClock)
	a.Request(m)
	time.Sleep(80 * time.Millisecond)

	// Second request before the delay elapses resets the window; nothing
	// should have been written yet shortly after the original deadline.
	addWidget(t, m, "Mail", widget.CategoryMail)
	a.Request(m)
	time.Sleep(90 * time.Millisecond)
	if len(p.List()) != 0 {
		t.Error("autosave fired before restarted delay elapsed")
	}

	waitForAutosave(t, p, 2)
}

func TestAutosaveFlush(t *testing.T) {
	p := newPersister(t)
	m := newManager(t)
	a := persist.NewAutosaver(p, time.Hour, nil)
	defer a.Stop()

	addWidget(t, m, "Clock", widget.CategoryClock)
	a.Request(m)
	a.Flush()

	list := p.List()
	if len(list) != 1 || !list[0].IsAutosave() {
		t.Fatalf("after Flush, list = %d snapshots, want 1 autosave", len(list))
	}
	if len(list[0].Items) != 1 {
		t.Errorf("flushed autosave has %d items, want 1", len(list[0].Items))
	}
}

func TestAutosaveStopCancelsPending(t *testing.T) {
	p := newPersister(t)
	m := newManager(t)
	a := persist.NewAutosaver(p, 20*time.Millisecond, nil)

	addWidget(t, m, "Clock", widget.CategoryClock)
	a.Request(m)
	a.Stop()

	time.Sleep(50 * time.Millisecond)
	if len(p.List()) != 0 {
		t.Error("autosave fired after Stop")
	}

	// Requests after Stop are ignored.
	a.Request(m)
	a.Flush()
	if len(p.List()) != 0 {
		t.Error("request after Stop was saved")
	}
}

func TestAutosaveReusesSnapshotID(t *testing.T) {
	p := newPersister(t)
	m := newManager(t)
	a := persist.NewAutosaver(p, time.Millisecond, nil)
	defer a.Stop()

	addWidget(t, m, "Clock", widget.CategoryClock)
	a.Request(m)
	a.Flush()
	addWidget(t, m, "Mail", widget.CategoryMail)
	a.Request(m)
	a.Flush()

	var autosaves []string
	for _, s := range p.List() {
		if s.IsAutosave() {
			autosaves = append(autosaves, s.ID)
		}
	}
	if len(autosaves) != 1 {
		t.Fatalf("found %d autosave snapshots, want 1", len(autosaves))
	}
	if _, err := p.Load(context.Background(), autosaves[0], newManager(t), widget.NewFactory()); err != nil {
		t.Fatalf("Load autosave: %v", err)
	}
}
