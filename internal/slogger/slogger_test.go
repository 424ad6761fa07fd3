package slogger

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{})
	log.With("session", "s1").Info("asset loaded", "url", "a.js", "note", "two words")

	line := buf.String()
	for _, want := range []string{"INFO asset loaded", "session=s1", "url=a.js", `note="two words"`} {
		if !strings.Contains(line, want) {
			t.Errorf("line %q missing %q", line, want)
		}
	}
	if strings.Contains(line, "\033[") {
		t.Error("color codes written without Color")
	}
}

func TestHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{Level: slog.LevelWarn})
	log.Info("quiet")
	log.Warn("loud")
	if strings.Contains(buf.String(), "quiet") || !strings.Contains(buf.String(), "loud") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestHandlerFilters(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		emit    func(*slog.Logger)
		wantOut bool
	}{
		{
			name:    "include key",
			opts:    Options{Include: []string{"url"}},
			emit:    func(l *slog.Logger) { l.Info("x", "url", "a.js") },
			wantOut: true,
		},
		{
			name:    "include misses",
			opts:    Options{Include: []string{"url=*.css"}},
			emit:    func(l *slog.Logger) { l.Info("x", "url", "a.js") },
			wantOut: false,
		},
		{
			name:    "exclude value",
			opts:    Options{Exclude: []string{"url=*.js"}},
			emit:    func(l *slog.Logger) { l.Info("x", "url", "a.js") },
			wantOut: false,
		},
		{
			name:    "exclude real errors only",
			opts:    Options{Exclude: []string{"err=*"}},
			emit:    func(l *slog.Logger) { l.Info("x", "err", nil) },
			wantOut: true,
		},
		{
			name:    "exclude error",
			opts:    Options{Exclude: []string{"err=*"}},
			emit:    func(l *slog.Logger) { l.Info("x", "err", errors.New("boom")) },
			wantOut: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(New(&buf, tt.opts))
			if got := buf.Len() > 0; got != tt.wantOut {
				t.Errorf("logged = %v, want %v (%q)", got, tt.wantOut, buf.String())
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("debug") != slog.LevelDebug || ParseLevel("WARN") != slog.LevelWarn {
		t.Error("level names not parsed")
	}
	if ParseLevel("loud") != slog.LevelInfo {
		t.Error("unknown level should fall back to info")
	}
}
