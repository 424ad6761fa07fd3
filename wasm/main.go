//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"syscall/js"
	"time"

	"tractor.dev/jigger"
	"tractor.dev/jigger/asset"
	"tractor.dev/jigger/internal/config"
	"tractor.dev/jigger/internal/slogger"
	"tractor.dev/jigger/web/dom"
	"tractor.dev/jigger/web/jsutil"
	"tractor.dev/jigger/web/reporter"
)

func main() {
	cfg := pageConfig()
	logger := slogger.New(jsutil.Console{}, slogger.Options{
		Level:   slogger.ParseLevel(cfg.Logging.Level),
		Exclude: cfg.Logging.Exclude,
	})
	slog.SetDefault(logger)

	var observe func(asset.Event)
	if cfg.Report.URL != "" {
		session := fmt.Sprintf("%x", time.Now().UnixNano())
		observe = reporter.Dial(cfg.Report.URL, session, logger).Observe
		logger = logger.With("session", session)
	}

	s := jigger.New(dom.New(), cfg, logger, observe)
	s.SetReadyResolver(globalHook(cfg.ReadyHook))
	setupAPI(s, logger)

	if !jigger.Bootstrap(s, cfg.Startup) {
		logger.Error("bootstrap asset not loaded", "url", cfg.Startup.Bootstrap.URL)
	}
	select {}
}

// pageConfig overlays the page's jiggerConfig global, when present, on the
// defaults. It may be a JSON string or a plain object.
func pageConfig() *config.Config {
	cfg := config.DefaultConfig()
	v := js.Global().Get("jiggerConfig")
	if v.IsUndefined() || v.IsNull() {
		return cfg
	}
	raw := v
	if v.Type() != js.TypeString {
		raw = js.Global().Get("JSON").Call("stringify", v)
	}
	if err := json.Unmarshal([]byte(raw.String()), cfg); err != nil {
		jsutil.Log("jigger: bad jiggerConfig:", err.Error())
	}
	return cfg
}

// globalHook resolves the named global function each time it is asked, so
// a page may define the hook after the loader started.
func globalHook(name string) func() func() {
	return func() func() {
		if name == "" {
			return nil
		}
		fn := js.Global().Get(name)
		if !jsutil.IsFunc(fn) {
			return nil
		}
		return func() { fn.Invoke() }
	}
}
