//go:build js && wasm

package main

import (
	"context"
	"log/slog"
	"syscall/js"

	"tractor.dev/jigger/asset"
	"tractor.dev/jigger/ctl"
	"tractor.dev/jigger/web/jsutil"
)

// setupAPI exposes the loader to page scripts as the jigger global.
func setupAPI(s *asset.Session, logger *slog.Logger) {
	js.Global().Set("jigger", js.ValueOf(map[string]any{
		// load(kind, id, url, tail, anchor, onLoad, onError) -> bool
		"load": js.FuncOf(func(this js.Value, args []js.Value) any {
			r := asset.Request{
				Kind:   str(arg(args, 0)),
				ID:     str(arg(args, 1)),
				URL:    str(arg(args, 2)),
				Tail:   arg(args, 3).Truthy(),
				Anchor: asset.ParseAnchor(str(arg(args, 4))),
			}
			if fn := arg(args, 5); jsutil.IsFunc(fn) {
				r.OnLoad = func() { fn.Invoke() }
			}
			if fn := arg(args, 6); jsutil.IsFunc(fn) {
				r.OnError = func(err error) { fn.Invoke(err.Error()) }
			}
			return s.Load(r)
		}),
		// loadBatch(urls) empties urls as it consumes them.
		"loadBatch": js.FuncOf(func(this js.Value, args []js.Value) any {
			arr := arg(args, 0)
			urls, ok := jsutil.Strings(arr)
			if !ok {
				logger.Debug("batch ignored", "err", asset.ErrInvalidBatch)
				return nil
			}
			arr.Set("length", 0)
			if err := s.LoadBatch(urls); err != nil {
				logger.Debug("batch ignored", "err", err)
			}
			return nil
		}),
		"onReady": js.FuncOf(func(this js.Value, args []js.Value) any {
			if fn := arg(args, 0); jsutil.IsFunc(fn) {
				s.OnReady(func() { fn.Invoke() })
			}
			return nil
		}),
		"status": js.FuncOf(func(this js.Value, args []js.Value) any {
			snap := s.Snapshot()
			urls := make([]any, len(snap.URLs))
			for i, u := range snap.URLs {
				urls[i] = u
			}
			return map[string]any{
				"state":   snap.State.String(),
				"pending": snap.Pending,
				"loaded":  snap.Loaded,
				"ready":   snap.Ready,
				"urls":    urls,
			}
		}),
		"ctl": js.FuncOf(func(this js.Value, args []js.Value) any {
			if err := ctl.Exec(context.Background(), s, str(arg(args, 0))); err != nil {
				return err.Error()
			}
			return nil
		}),
		"extension": js.FuncOf(func(this js.Value, args []js.Value) any {
			return asset.Extension(str(arg(args, 0)))
		}),
		"fileName": js.FuncOf(func(this js.Value, args []js.Value) any {
			return asset.FileName(str(arg(args, 0)))
		}),
	}))
}

func arg(args []js.Value, i int) js.Value {
	if i < len(args) {
		return args[i]
	}
	return js.Undefined()
}

func str(v js.Value) string {
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}
