//go:build js && wasm

package jsutil

import (
	"strings"
	"syscall/js"
)

func Log(args ...any) {
	js.Global().Get("console").Call("log", args...)
}

// Console is an io.Writer that sends each write to console.log.
type Console struct{}

func (Console) Write(p []byte) (int, error) {
	js.Global().Get("console").Call("log", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func IsFunc(v js.Value) bool {
	return v.Type() == js.TypeFunction
}

func IsArray(v js.Value) bool {
	return js.Global().Get("Array").Call("isArray", v).Bool()
}

// Strings copies a JS array into a Go slice, converting each element with
// String. ok is false when v is not an array.
func Strings(v js.Value) (s []string, ok bool) {
	if !IsArray(v) {
		return nil, false
	}
	n := v.Length()
	s = make([]string, n)
	for i := 0; i < n; i++ {
		s[i] = v.Index(i).String()
	}
	return s, true
}

// Bytes copies p into a new Uint8Array.
func Bytes(p []byte) js.Value {
	buf := js.Global().Get("Uint8Array").New(len(p))
	js.CopyBytesToJS(buf, p)
	return buf
}
