// Package htmldom implements asset.Document over an HTML tree parsed with
// golang.org/x/net/html. Nothing is fetched: load and error events fire
// when Complete or Fail is called for an element's URL, which makes it
// suitable for tests and for prerendering pages outside a browser.
package htmldom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"tractor.dev/jigger/asset"
)

// Skeleton is the smallest page a batch can run against: a head and a
// tail marker at the end of the body.
const Skeleton = `<!DOCTYPE html><html><head></head><body><div id="tail"></div></body></html>`

type Document struct {
	root   *html.Node
	events map[*html.Node]*handlers
}

type handlers struct {
	load func()
	fail func(error)
	done bool
}

// New returns a document parsed from Skeleton.
func New() *Document {
	d, err := Parse(strings.NewReader(Skeleton))
	if err != nil {
		panic(err)
	}
	return d
}

func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{root: root, events: make(map[*html.Node]*handlers)}, nil
}

func (d *Document) Root() *html.Node {
	return d.root
}

func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

func (d *Document) String() string {
	var b strings.Builder
	d.Render(&b)
	return b.String()
}

func (d *Document) CreateElement(tag string) asset.Element {
	tag = strings.ToLower(tag)
	return &Element{
		n: &html.Node{
			Type:     html.ElementNode,
			Data:     tag,
			DataAtom: atom.Lookup([]byte(tag)),
		},
		doc: d,
	}
}

func (d *Document) ElementByID(id string) asset.Element {
	if id == "" {
		return nil
	}
	return d.wrap(d.find(func(n *html.Node) bool {
		return attr(n, "id") == id
	}))
}

func (d *Document) Head() asset.Element {
	return d.wrap(d.find(func(n *html.Node) bool {
		return n.DataAtom == atom.Head
	}))
}

// Requested returns the URLs of attached elements whose load has neither
// completed nor failed, in document order.
func (d *Document) Requested() []string {
	var urls []string
	d.walk(func(n *html.Node) bool {
		if h, ok := d.events[n]; ok && !h.done {
			urls = append(urls, asset.URLOf(d.wrap(n)))
		}
		return false
	})
	return urls
}

// Complete fires the load handler of every attached element pointing at
// url whose outcome is still open, and returns how many fired.
func (d *Document) Complete(url string) int {
	due := d.settle(url)
	for _, h := range due {
		if h.load != nil {
			h.load()
		}
	}
	return len(due)
}

// Fail fires error handlers like Complete fires load handlers. A nil err
// is replaced by one wrapping asset.ErrLoadFailed.
func (d *Document) Fail(url string, err error) int {
	if err == nil {
		err = fmt.Errorf("%w: %s", asset.ErrLoadFailed, url)
	}
	due := d.settle(url)
	for _, h := range due {
		if h.fail != nil {
			h.fail(err)
		}
	}
	return len(due)
}

// track starts delivering events to handlers set on el before it was
// inserted.
func (d *Document) track(el asset.Element) {
	e, ok := el.(*Element)
	if !ok || e.h == nil {
		return
	}
	if _, ok := d.events[e.n]; !ok {
		d.events[e.n] = e.h
	}
}

// settle marks matching handlers done before any of them run, since
// handlers may change the tree.
func (d *Document) settle(url string) []*handlers {
	var due []*handlers
	d.walk(func(n *html.Node) bool {
		h, ok := d.events[n]
		if ok && !h.done && asset.URLOf(d.wrap(n)) == url {
			h.done = true
			due = append(due, h)
		}
		return false
	})
	return due
}

func (d *Document) find(match func(*html.Node) bool) *html.Node {
	var found *html.Node
	d.walk(func(n *html.Node) bool {
		if match(n) {
			found = n
			return true
		}
		return false
	})
	return found
}

// walk visits element nodes in document order until visit returns true.
func (d *Document) walk(visit func(*html.Node) bool) {
	var rec func(*html.Node) bool
	rec = func(n *html.Node) bool {
		if n.Type == html.ElementNode && visit(n) {
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if rec(c) {
				return true
			}
		}
		return false
	}
	rec(d.root)
}

func (d *Document) wrap(n *html.Node) asset.Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	return &Element{n: n, doc: d}
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val
		}
	}
	return ""
}
