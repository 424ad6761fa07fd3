//go:build js && wasm

// Package dom implements asset.Document over the page's DOM.
package dom

import (
	"syscall/js"

	"tractor.dev/jigger/asset"
)

type Document struct {
	value js.Value
}

// New returns the current page's document.
func New() *Document {
	return &Document{value: js.Global().Get("document")}
}

func (d *Document) Value() js.Value {
	return d.value
}

func (d *Document) CreateElement(tag string) asset.Element {
	return wrap(d.value.Call("createElement", tag))
}

func (d *Document) ElementByID(id string) asset.Element {
	return wrap(d.value.Call("getElementById", id))
}

func (d *Document) Head() asset.Element {
	return wrap(d.value.Get("head"))
}

func wrap(v js.Value) asset.Element {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &Element{value: v}
}
