// Package jigger wires the asset loader to its configuration: it builds a
// session with the configured tail marker and class transitions, and runs
// the startup sequence.
package jigger

import (
	"log/slog"

	"tractor.dev/jigger/asset"
	"tractor.dev/jigger/internal/config"
)

// New returns a session over doc configured by cfg. observe may be nil.
func New(doc asset.Document, cfg *config.Config, logger *slog.Logger, observe func(asset.Event)) *asset.Session {
	return asset.NewSession(doc, asset.Options{
		TailID:      cfg.Tail.ID,
		TailTag:     cfg.Tail.Tag,
		Transitions: asset.ClassTransitions(doc, cfg.UI.Logo, cfg.UI.Wrapper),
		Logger:      logger,
		Observe:     observe,
	})
}

// Bootstrap loads the startup bootstrap asset and, once it has loaded,
// submits the startup batch. Without a bootstrap asset the batch is
// submitted right away. It reports whether the first step was dispatched.
func Bootstrap(s *asset.Session, st config.StartupConfig) bool {
	batch := func() {
		if len(st.Batch) == 0 {
			return
		}
		if err := s.LoadBatch(append([]string(nil), st.Batch...)); err != nil {
			s.Logger().Warn("startup batch not loaded", "err", err)
		}
	}
	b := st.Bootstrap
	if b.URL == "" {
		batch()
		return true
	}
	return s.Load(asset.Request{
		Kind:   b.Kind,
		ID:     b.ID,
		URL:    b.URL,
		Tail:   b.Tail,
		Anchor: asset.ParseAnchor(b.Anchor),
		OnLoad: batch,
	})
}

// Prerender inserts the startup assets into doc without waiting for any
// load: the bootstrap asset first, then the batch. Pages rendered this way
// fetch everything in document order and need no loader at runtime.
func Prerender(doc asset.Document, cfg *config.Config, logger *slog.Logger) *asset.Session {
	s := New(doc, cfg, logger, nil)
	if b := cfg.Startup.Bootstrap; b.URL != "" {
		s.Load(asset.Request{
			Kind:   b.Kind,
			ID:     b.ID,
			URL:    b.URL,
			Tail:   b.Tail,
			Anchor: asset.ParseAnchor(b.Anchor),
		})
	}
	if len(cfg.Startup.Batch) > 0 {
		if err := s.LoadBatch(append([]string(nil), cfg.Startup.Batch...)); err != nil {
			s.Logger().Warn("startup batch not rendered", "err", err)
		}
	}
	return s
}
