package asset

type State int

const (
	Idle       State = iota // no batch submitted yet
	Loading                 // loaded < pending
	AllArrived              // loaded == pending, ready hook not fired
	Ready                   // loaded == pending, ready flag set
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case AllArrived:
		return "all-arrived"
	case Ready:
		return "ready"
	}
	return "unknown"
}

// Tracker counts completions for the current batch and decides when the
// ready hook and the arrived transition run. It never calls hooks itself:
// the methods return the callbacks due so the caller can run them outside
// its lock. It is not safe for concurrent use.
type Tracker struct {
	pending int
	loaded  int
	started bool
	ready   bool

	// resolve looks the ready hook up at parity time. A nil result means
	// no hook is defined yet.
	resolve func() func()
	arrived func()
}

func NewTracker(arrived func()) *Tracker {
	return &Tracker{arrived: arrived}
}

// SetHook installs the resolver consulted when parity is reached.
func (t *Tracker) SetHook(resolve func() func()) {
	t.resolve = resolve
}

// Begin resets the counters for a batch of n dispatched assets. Assets
// still in flight from earlier batches stay pending, so parity always means
// every dispatched asset has completed. A batch with nothing to wait for
// reaches parity immediately.
func (t *Tracker) Begin(n int) []func() {
	var inflight int
	if t.State() == Loading {
		inflight = t.pending - t.loaded
	}
	t.started = true
	t.pending = inflight + n
	t.loaded = 0
	if t.pending == 0 {
		return t.parity()
	}
	return nil
}

// Notify records one completed asset. Notifications beyond pending are
// dropped and reported with ok false.
func (t *Tracker) Notify() (due []func(), ok bool) {
	if !t.started || t.loaded >= t.pending {
		return nil, false
	}
	t.loaded++
	return t.parity(), true
}

// Retry runs the parity check again without counting anything. It is how
// a hook registered after all assets arrived gets its turn.
func (t *Tracker) Retry() []func() {
	if t.State() != AllArrived {
		return nil
	}
	return t.parity()
}

func (t *Tracker) parity() []func() {
	if t.loaded != t.pending {
		return nil
	}
	var due []func()
	if !t.ready && t.resolve != nil {
		if hook := t.resolve(); hook != nil {
			due = append(due, hook)
			t.ready = true
		}
	}
	if t.ready && t.arrived != nil {
		due = append(due, t.arrived)
	}
	return due
}

func (t *Tracker) State() State {
	switch {
	case !t.started:
		return Idle
	case t.loaded < t.pending:
		return Loading
	case t.ready:
		return Ready
	}
	return AllArrived
}

func (t *Tracker) Pending() int { return t.pending }

func (t *Tracker) Loaded() int { return t.loaded }

// IsReady reports the ready flag, which once set stays set.
func (t *Tracker) IsReady() bool { return t.ready }
