package htmldom

import (
	"golang.org/x/net/html"
	"tractor.dev/jigger/asset"
)

type Element struct {
	n   *html.Node
	doc *Document

	// h holds handlers set while the element is detached. The document
	// tracks them only once the element is inserted.
	h *handlers
}

func (e *Element) Node() *html.Node {
	return e.n
}

func (e *Element) Tag() string {
	return e.n.Data
}

func (e *Element) Attr(name string) string {
	return attr(e.n, name)
}

func (e *Element) SetAttr(name, value string) {
	for i, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			e.n.Attr[i].Val = value
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: name, Val: value})
}

// SetBool maps a boolean property onto the presence of an attribute.
func (e *Element) SetBool(name string, v bool) {
	if v {
		e.SetAttr(name, "")
		return
	}
	for i, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			e.n.Attr = append(e.n.Attr[:i], e.n.Attr[i+1:]...)
			return
		}
	}
}

func (e *Element) Parent() asset.Element {
	return e.doc.wrap(e.n.Parent)
}

func (e *Element) NextSibling() asset.Element {
	for s := e.n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return e.doc.wrap(s)
		}
	}
	return nil
}

func (e *Element) Prepend(child asset.Element) {
	c := detach(child)
	if c == nil {
		return
	}
	e.n.InsertBefore(c, e.n.FirstChild)
	e.doc.track(child)
}

func (e *Element) Append(child asset.Element) {
	c := detach(child)
	if c == nil {
		return
	}
	e.n.AppendChild(c)
	e.doc.track(child)
}

// InsertBefore does nothing when ref is not a child of e.
func (e *Element) InsertBefore(child, ref asset.Element) {
	r := node(ref)
	if r == nil || r.Parent != e.n {
		return
	}
	c := detach(child)
	if c == nil || c == r {
		return
	}
	e.n.InsertBefore(c, r)
	e.doc.track(child)
}

func (e *Element) OnLoad(fn func()) {
	e.handlers().load = fn
}

func (e *Element) OnError(fn func(error)) {
	e.handlers().fail = fn
}

func (e *Element) handlers() *handlers {
	if h, ok := e.doc.events[e.n]; ok {
		return h
	}
	if e.h == nil {
		e.h = &handlers{}
	}
	if e.n.Parent != nil {
		e.doc.events[e.n] = e.h
	}
	return e.h
}

func node(el asset.Element) *html.Node {
	if e, ok := el.(*Element); ok && e != nil {
		return e.n
	}
	return nil
}

// detach removes a node from its current parent, since a DOM insert moves
// the node rather than copying it.
func detach(el asset.Element) *html.Node {
	n := node(el)
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	return n
}

// SetText replaces the children of e with a single text node, which is how
// inline scripts get their source.
func (e *Element) SetText(s string) {
	for c := e.n.FirstChild; c != nil; c = e.n.FirstChild {
		e.n.RemoveChild(c)
	}
	e.n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}
