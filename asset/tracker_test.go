package asset

import "testing"

func TestTrackerReadyOnce(t *testing.T) {
	var hooks, arrivals int
	tr := NewTracker(func() { arrivals++ })
	tr.SetHook(func() func() { return func() { hooks++ } })

	if tr.State() != Idle {
		t.Fatalf("state = %s, want idle", tr.State())
	}
	run(tr.Begin(3))
	for i := 0; i < 3; i++ {
		if tr.State() != Loading {
			t.Fatalf("state after %d = %s, want loading", i, tr.State())
		}
		due, ok := tr.Notify()
		if !ok {
			t.Fatalf("notify %d rejected", i)
		}
		run(due)
	}
	if hooks != 1 || arrivals != 1 {
		t.Fatalf("hooks=%d arrivals=%d, want 1 and 1", hooks, arrivals)
	}
	if tr.State() != Ready || !tr.IsReady() {
		t.Fatalf("state = %s, want ready", tr.State())
	}

	// a second batch runs the transition again but never the hook
	run(tr.Begin(1))
	due, _ := tr.Notify()
	run(due)
	if hooks != 1 || arrivals != 2 {
		t.Errorf("hooks=%d arrivals=%d, want 1 and 2", hooks, arrivals)
	}
}

func TestTrackerNoHookYet(t *testing.T) {
	var hooks int
	var hook func()
	tr := NewTracker(nil)
	tr.SetHook(func() func() { return hook })

	run(tr.Begin(1))
	due, _ := tr.Notify()
	run(due)
	if tr.State() != AllArrived {
		t.Fatalf("state = %s, want all-arrived", tr.State())
	}

	hook = func() { hooks++ }
	run(tr.Retry())
	if hooks != 1 || tr.State() != Ready {
		t.Errorf("hooks=%d state=%s after retry", hooks, tr.State())
	}
	run(tr.Retry())
	if hooks != 1 {
		t.Errorf("retry after ready fired the hook again")
	}
}

func TestTrackerExtraNotify(t *testing.T) {
	tr := NewTracker(nil)
	if _, ok := tr.Notify(); ok {
		t.Error("notify before any batch should be dropped")
	}
	tr.Begin(1)
	tr.Notify()
	if _, ok := tr.Notify(); ok {
		t.Error("notify past pending should be dropped")
	}
	if tr.Loaded() != 1 || tr.Pending() != 1 {
		t.Errorf("loaded=%d pending=%d", tr.Loaded(), tr.Pending())
	}
}

func TestTrackerEmptyBatch(t *testing.T) {
	var hooks int
	tr := NewTracker(nil)
	tr.SetHook(func() func() { return func() { hooks++ } })
	run(tr.Begin(0))
	if hooks != 1 || tr.State() != Ready {
		t.Errorf("hooks=%d state=%s, want 1 and ready", hooks, tr.State())
	}
}

func TestTrackerCarriesInflight(t *testing.T) {
	var hooks int
	tr := NewTracker(nil)
	tr.SetHook(func() func() { return func() { hooks++ } })

	run(tr.Begin(2))
	due, _ := tr.Notify()
	run(due)

	// nothing new, one still in flight
	run(tr.Begin(0))
	if hooks != 0 || tr.State() != Loading {
		t.Fatalf("hooks=%d state=%s, want 0 and loading", hooks, tr.State())
	}
	if tr.Pending() != 1 || tr.Loaded() != 0 {
		t.Fatalf("loaded=%d pending=%d, want 0 and 1", tr.Loaded(), tr.Pending())
	}

	run(tr.Begin(2))
	if tr.Pending() != 3 {
		t.Fatalf("pending = %d, want 3", tr.Pending())
	}
	for i := 0; i < 3; i++ {
		due, ok := tr.Notify()
		if !ok {
			t.Fatalf("notify %d rejected", i)
		}
		run(due)
	}
	if hooks != 1 || tr.State() != Ready {
		t.Errorf("hooks=%d state=%s, want 1 and ready", hooks, tr.State())
	}
}
