//go:build js && wasm

// Package reporter streams a page's asset events to the dev server over a
// browser WebSocket.
package reporter

import (
	"log/slog"
	"syscall/js"
	"time"

	"tractor.dev/jigger/asset"
	"tractor.dev/jigger/report"
	"tractor.dev/jigger/web/jsutil"
)

type Reporter struct {
	session string
	log     *slog.Logger
	ws      js.Value
	open    bool
	queue   [][]byte
}

// Dial connects to url. Events observed before the socket opens are queued
// and sent once it does; if it never opens they are dropped.
func Dial(url, session string, logger *slog.Logger) *Reporter {
	r := &Reporter{session: session, log: logger}
	r.ws = js.Global().Get("WebSocket").New(url)
	r.ws.Set("binaryType", "arraybuffer")

	var onopen, onclose js.Func
	onopen = js.FuncOf(func(this js.Value, args []js.Value) any {
		r.open = true
		for _, b := range r.queue {
			r.ws.Call("send", jsutil.Bytes(b))
		}
		r.queue = nil
		onopen.Release()
		return nil
	})
	onclose = js.FuncOf(func(this js.Value, args []js.Value) any {
		r.open = false
		r.queue = nil
		r.log.Debug("report socket closed", "url", url)
		onclose.Release()
		return nil
	})
	r.ws.Set("onopen", onopen)
	r.ws.Set("onclose", onclose)
	return r
}

// Observe has the signature of asset.Options.Observe.
func (r *Reporter) Observe(e asset.Event) {
	b, err := report.Encode(report.FromEvent(r.session, e, time.Now()))
	if err != nil {
		r.log.Warn("report", "err", err)
		return
	}
	if !r.open {
		if r.ws.Get("readyState").Int() == 0 {
			r.queue = append(r.queue, b)
		}
		return
	}
	r.ws.Call("send", jsutil.Bytes(b))
}
