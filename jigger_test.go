package jigger

import (
	"bytes"
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"tractor.dev/jigger/asset"
	"tractor.dev/jigger/asset/htmldom"
	"tractor.dev/jigger/internal/config"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestBootstrap(t *testing.T) {
	doc := htmldom.New()
	cfg := config.DefaultConfig()
	var events []asset.EventType
	s := New(doc, cfg, discard, func(e asset.Event) { events = append(events, e.Type) })
	var ready int
	s.OnReady(func() { ready++ })

	if !Bootstrap(s, cfg.Startup) {
		t.Fatal("bootstrap not dispatched")
	}
	if got := doc.Requested(); len(got) != 1 || got[0] != cfg.Startup.Bootstrap.URL {
		t.Fatalf("requested before bootstrap loads = %v", got)
	}

	doc.Complete(cfg.Startup.Bootstrap.URL)
	pending := doc.Requested()
	if len(pending) != len(cfg.Startup.Batch) {
		t.Fatalf("requested after bootstrap = %v", pending)
	}
	for _, url := range pending {
		doc.Complete(url)
	}
	if ready != 1 {
		t.Errorf("ready fired %d times, want 1", ready)
	}
	if events[0] != asset.EventLoad || events[len(events)-1] != asset.EventReady {
		t.Errorf("events = %v", events)
	}
	if !slices.Equal(cfg.Startup.Batch, config.DefaultConfig().Startup.Batch) {
		t.Error("bootstrap consumed the configured batch")
	}
}

func TestPrerender(t *testing.T) {
	doc := htmldom.New()
	cfg := config.DefaultConfig()
	Prerender(doc, cfg, discard)

	out := doc.String()
	jq := strings.Index(out, "jquery.min.js")
	bs := strings.Index(out, "bootstrap.min.js")
	if jq < 0 || bs < 0 || jq > bs {
		t.Errorf("jquery should precede bootstrap.min.js in %s", out)
	}
	if !strings.Contains(out, `<head><link rel="stylesheet"`) {
		t.Errorf("stylesheets not in head: %s", out)
	}
}

func TestBootstrapWithoutTail(t *testing.T) {
	doc, err := htmldom.Parse(strings.NewReader(`<html><head></head><body></body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig()
	cfg.Startup.Bootstrap.Tail = false
	var buf bytes.Buffer
	s := New(doc, cfg, slog.New(slog.NewTextHandler(&buf, nil)), nil)

	if !Bootstrap(s, cfg.Startup) {
		t.Fatal("bootstrap not dispatched")
	}
	doc.Complete(cfg.Startup.Bootstrap.URL)
	if !strings.Contains(buf.String(), "startup batch not loaded") {
		t.Errorf("skipped batch not logged: %s", buf.String())
	}
	if n := len(s.Snapshot().URLs); n != 0 {
		t.Errorf("registry has %d urls, want 0", n)
	}
}
