// Package slogger is a compact slog handler for the loader: one line per
// record, optional ANSI dimming, and attribute filters written as glob
// patterns against "key" or "key=value".
package slogger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"sync"
)

type Options struct {
	Level   slog.Leveler
	Include []string // if non-empty, only records with an attr matching one are logged
	Exclude []string // records with an attr matching one are dropped
	Color   bool
}

type Handler struct {
	opts  Options
	attrs []slog.Attr
	group string

	mu *sync.Mutex
	w  io.Writer
}

func NewHandler(w io.Writer, opts Options) *Handler {
	if opts.Level == nil {
		opts.Level = slog.LevelInfo
	}
	return &Handler{opts: opts, mu: &sync.Mutex{}, w: w}
}

func New(w io.Writer, opts Options) *slog.Logger {
	return slog.New(NewHandler(w, opts))
}

// ParseLevel accepts slog level names in any case and falls back to info.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.opts.Level.Level()
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = append(append([]slog.Attr(nil), h.attrs...), h.qualify(attrs)...)
	return &h2
}

func (h *Handler) WithGroup(name string) slog.Handler {
	h2 := *h
	if h.group != "" {
		name = h.group + "." + name
	}
	h2.group = name
	return &h2
}

func (h *Handler) qualify(attrs []slog.Attr) []slog.Attr {
	if h.group == "" {
		return attrs
	}
	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = slog.Attr{Key: h.group + "." + a.Key, Value: a.Value}
	}
	return out
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	attrs := append([]slog.Attr(nil), h.attrs...)
	var rec []slog.Attr
	r.Attrs(func(a slog.Attr) bool {
		rec = append(rec, a)
		return true
	})
	attrs = append(attrs, h.qualify(rec)...)

	if !h.keep(attrs) {
		return nil
	}

	var b strings.Builder
	ts := r.Time.Format("15:04:05.000")
	if h.opts.Color {
		fmt.Fprintf(&b, "\033[90m%s\033[0m %s %s", ts, r.Level, r.Message)
	} else {
		fmt.Fprintf(&b, "%s %s %s", ts, r.Level, r.Message)
	}
	for _, a := range attrs {
		if h.opts.Color {
			fmt.Fprintf(&b, " \033[90m%s=\033[0m%s", a.Key, valueString(a.Value))
		} else {
			fmt.Fprintf(&b, " %s=%s", a.Key, valueString(a.Value))
		}
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *Handler) keep(attrs []slog.Attr) bool {
	if len(h.opts.Include) > 0 {
		var hit bool
		for _, a := range attrs {
			if matches(a, h.opts.Include) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	for _, a := range attrs {
		if matches(a, h.opts.Exclude) {
			return false
		}
	}
	return true
}

// matches reports whether a matches one of patterns as "key" or
// "key=value". A "key=*" pattern does not match a nil value, so "err=*"
// drops records with a real error but keeps those with err=<nil>.
func matches(a slog.Attr, patterns []string) bool {
	val := valueString(a.Value)
	isNil := a.Value.Kind() == slog.KindAny && a.Value.Any() == nil
	for _, p := range patterns {
		if isNil && strings.HasSuffix(p, "=*") {
			continue
		}
		if ok, _ := path.Match(p, a.Key+"="+val); ok {
			return true
		}
		if ok, _ := path.Match(p, a.Key); ok {
			return true
		}
	}
	return false
}

func valueString(v slog.Value) string {
	v = v.Resolve()
	if v.Kind() == slog.KindAny && v.Any() == nil {
		return "<nil>"
	}
	s := v.String()
	if strings.ContainsAny(s, " \t\n\"") {
		return fmt.Sprintf("%q", s)
	}
	return s
}
