//go:build js && wasm

package dom

import (
	"fmt"
	"strings"
	"syscall/js"

	"tractor.dev/jigger/asset"
)

type Element struct {
	value js.Value

	onload  js.Func
	onerror js.Func
	load    func()
	fail    func(error)
	settled bool
}

func (e *Element) Value() js.Value {
	return e.value
}

func (e *Element) Tag() string {
	return strings.ToLower(e.value.Get("tagName").String())
}

func (e *Element) Attr(name string) string {
	v := e.value.Call("getAttribute", name)
	if v.IsNull() {
		return ""
	}
	return v.String()
}

func (e *Element) SetAttr(name, value string) {
	e.value.Call("setAttribute", name, value)
}

// SetBool sets the DOM property, which for async differs from the
// attribute: a created script is async until the property is cleared.
func (e *Element) SetBool(name string, v bool) {
	e.value.Set(name, v)
}

func (e *Element) Parent() asset.Element {
	return wrap(e.value.Get("parentElement"))
}

func (e *Element) NextSibling() asset.Element {
	return wrap(e.value.Get("nextElementSibling"))
}

func (e *Element) Prepend(child asset.Element) {
	if c, ok := child.(*Element); ok {
		e.value.Call("prepend", c.value)
	}
}

func (e *Element) Append(child asset.Element) {
	if c, ok := child.(*Element); ok {
		e.value.Call("appendChild", c.value)
	}
}

func (e *Element) InsertBefore(child, ref asset.Element) {
	c, ok := child.(*Element)
	r, ok2 := ref.(*Element)
	if !ok || !ok2 {
		return
	}
	e.value.Call("insertBefore", c.value, r.value)
}

func (e *Element) OnLoad(fn func()) {
	e.load = fn
	e.listen()
}

func (e *Element) OnError(fn func(error)) {
	e.fail = fn
	e.listen()
}

// listen installs the JS handlers once. Whichever event fires first
// settles the element and releases both functions.
func (e *Element) listen() {
	if e.onload.Truthy() {
		return
	}
	e.onload = js.FuncOf(func(this js.Value, args []js.Value) any {
		if e.settle() && e.load != nil {
			e.load()
		}
		return nil
	})
	e.onerror = js.FuncOf(func(this js.Value, args []js.Value) any {
		if e.settle() && e.fail != nil {
			e.fail(fmt.Errorf("%w: %s", asset.ErrLoadFailed, asset.URLOf(e)))
		}
		return nil
	})
	e.value.Set("onload", e.onload)
	e.value.Set("onerror", e.onerror)
}

func (e *Element) settle() bool {
	if e.settled {
		return false
	}
	e.settled = true
	e.value.Set("onload", js.Null())
	e.value.Set("onerror", js.Null())
	e.onload.Release()
	e.onerror.Release()
	return true
}
