package asset

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

type EventType string

const (
	EventBatch EventType = "batch"
	EventLoad  EventType = "load"
	EventError EventType = "error"
	EventReady EventType = "ready"
)

// Event is emitted to Options.Observe as a session makes progress.
type Event struct {
	Type    EventType
	URL     string
	Pending int
	Loaded  int
	Err     string
}

type Options struct {
	// TailID and TailTag identify the tail marker element batches append
	// scripts to. They default to "tail" and "div".
	TailID  string
	TailTag string

	Transitions Transitions
	Logger      *slog.Logger
	Observe     func(Event)
}

// Snapshot is a point-in-time view of a session.
type Snapshot struct {
	URLs    []string
	Pending int
	Loaded  int
	State   State
	Ready   bool
}

// Session holds the load state for one page lifetime: the registry of
// requested URLs, the batch counters and the ready flag.
type Session struct {
	doc  Document
	opts Options
	log  *slog.Logger

	mu      sync.Mutex
	reg     *Registry
	tracker *Tracker
	hook    func()
	resolve func() func()
	readyCh chan struct{}
}

func NewSession(doc Document, opts Options) *Session {
	if opts.TailID == "" {
		opts.TailID = "tail"
	}
	if opts.TailTag == "" {
		opts.TailTag = "div"
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	s := &Session{
		doc:     doc,
		opts:    opts,
		log:     opts.Logger,
		reg:     NewRegistry(),
		readyCh: make(chan struct{}),
	}
	s.tracker = NewTracker(opts.Transitions.Arrived)
	s.tracker.SetHook(func() func() {
		if s.hook != nil {
			return s.hook
		}
		if s.resolve != nil {
			return s.resolve()
		}
		return nil
	})
	return s
}

func (s *Session) Document() Document {
	return s.doc
}

func (s *Session) Logger() *slog.Logger {
	return s.log
}

// OnReady registers fn as the ready hook. It takes precedence over the
// resolver installed with SetReadyResolver. If every asset already arrived
// and no hook fired yet, fn runs before OnReady returns.
func (s *Session) OnReady(fn func()) {
	s.setHook(func() { s.hook = fn })
}

// SetReadyResolver installs a function that looks the ready hook up each
// time parity is reached, so a hook defined after a batch was submitted
// is still found. It returns nil while no hook exists, and is only
// consulted while no hook was registered with OnReady. resolve runs with
// the session locked and must not call back into the session.
func (s *Session) SetReadyResolver(resolve func() func()) {
	s.setHook(func() { s.resolve = resolve })
}

func (s *Session) setHook(set func()) {
	s.mu.Lock()
	set()
	due := s.afterParity(s.tracker.Retry())
	s.mu.Unlock()
	run(due)
}

// Load builds and inserts a single asset. It does not consult the
// registry, so loading the same URL twice inserts it twice.
func (s *Session) Load(r Request) bool {
	return s.load(r, false)
}

// load dispatches r. Batch loads are counted by the tracker, which emits
// their load events itself.
func (s *Session) load(r Request, counted bool) bool {
	onError := r.OnError
	r.OnError = func(err error) {
		s.emit(Event{Type: EventError, URL: r.URL, Err: errString(err)})
		if onError != nil {
			onError(err)
			return
		}
		s.log.Warn("asset load failed", "url", r.URL, "err", err)
	}
	if !counted {
		onLoad := r.OnLoad
		r.OnLoad = func() {
			s.emit(Event{Type: EventLoad, URL: r.URL})
			if onLoad != nil {
				onLoad()
				return
			}
			s.log.Info("asset loaded", "url", r.URL)
		}
	}

	el, err := Build(s.doc, r, s.log)
	if err != nil {
		s.log.Error("build asset", "url", r.URL, "err", err)
		return false
	}

	var container Element
	if r.Tail {
		container = s.doc.ElementByID(s.opts.TailID)
	} else {
		container = s.doc.Head()
	}
	// After anchors resolve against the document and need no container.
	if container == nil && (r.Anchor.IsFirst() || r.Anchor.IsLast()) {
		s.log.Error("insert asset", "url", r.URL, "err", ErrNoContainer, "tail", r.Tail)
		return false
	}

	if !Insert(s.doc, container, el, r.Anchor) {
		s.log.Error("insert asset", "url", r.URL, "err", ErrAnchorNotFound, "anchor", r.Anchor.String())
		return false
	}
	return true
}

// LoadBatch loads every URL not requested before, inferring kind from the
// extension and id from the file name. Scripts go to the tail marker and
// stylesheets to head. Completions feed the tracker; when all of them
// arrive, the ready hook runs once per page lifetime.
//
// The batch counts only the URLs it dispatches, so duplicates within urls
// or from earlier batches never keep it from completing.
func (s *Session) LoadBatch(urls []string) error {
	if urls == nil {
		s.log.Debug("batch ignored", "err", ErrInvalidBatch)
		return ErrInvalidBatch
	}
	tail := s.doc.ElementByID(s.opts.TailID)
	if tail == nil || !strings.EqualFold(tail.Tag(), s.opts.TailTag) {
		s.log.Debug("batch ignored", "err", ErrNoTail, "tail", s.opts.TailID)
		return ErrNoTail
	}
	if len(urls) == 0 {
		return nil
	}

	s.mu.Lock()
	var fresh []string
	for _, url := range urls {
		if s.reg.RequestOnce(url) {
			fresh = append(fresh, url)
		}
	}
	due := s.afterParity(s.tracker.Begin(len(fresh)))
	pending, loaded := s.tracker.Pending(), s.tracker.Loaded()
	s.mu.Unlock()

	s.log.Info("batch", "urls", len(urls), "pending", pending)
	s.emit(Event{Type: EventBatch, Pending: pending, Loaded: loaded})
	if s.opts.Transitions.Begin != nil {
		s.opts.Transitions.Begin()
	}
	run(due)

	for _, url := range fresh {
		kind := Extension(url)
		s.load(Request{
			Kind:   kind,
			ID:     FileName(url),
			URL:    url,
			Tail:   kind == "js",
			Anchor: Last,
			OnLoad: s.notifier(url),
		}, true)
	}
	return nil
}

func (s *Session) notifier(url string) func() {
	return func() {
		s.mu.Lock()
		due, ok := s.tracker.Notify()
		due = s.afterParity(due)
		pending, loaded := s.tracker.Pending(), s.tracker.Loaded()
		s.mu.Unlock()

		if !ok {
			s.log.Warn("completion outside batch", "url", url)
			return
		}
		s.log.Info("asset loaded", "url", url, "loaded", loaded, "pending", pending)
		s.emit(Event{Type: EventLoad, URL: url, Pending: pending, Loaded: loaded})
		run(due)
	}
}

// afterParity closes readyCh the first time the tracker sets its ready
// flag. Callers hold s.mu.
func (s *Session) afterParity(due []func()) []func() {
	if s.tracker.IsReady() {
		select {
		case <-s.readyCh:
		default:
			close(s.readyCh)
			pending, loaded := s.tracker.Pending(), s.tracker.Loaded()
			due = append([]func(){func() {
				s.emit(Event{Type: EventReady, Pending: pending, Loaded: loaded})
			}}, due...)
		}
	}
	return due
}

// Wait blocks until the ready hook has fired or ctx is done.
func (s *Session) Wait(ctx context.Context) error {
	select {
	case <-s.readyCh:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Session) Requested(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.Has(url)
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		URLs:    s.reg.URLs(),
		Pending: s.tracker.Pending(),
		Loaded:  s.tracker.Loaded(),
		State:   s.tracker.State(),
		Ready:   s.tracker.IsReady(),
	}
}

func (s *Session) emit(e Event) {
	if s.opts.Observe != nil {
		s.opts.Observe(e)
	}
}

func run(fns []func()) {
	for _, fn := range fns {
		fn()
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
