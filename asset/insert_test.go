package asset_test

import (
	"strings"
	"testing"

	"tractor.dev/jigger/asset"
	"tractor.dev/jigger/asset/htmldom"
)

func parse(t *testing.T, src string) *htmldom.Document {
	t.Helper()
	doc, err := htmldom.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func childIDs(el asset.Element) []string {
	var ids []string
	for c := el.(*htmldom.Element).Node().FirstChild; c != nil; c = c.NextSibling {
		for _, a := range c.Attr {
			if a.Key == "id" {
				ids = append(ids, a.Val)
			}
		}
	}
	return ids
}

func newDiv(doc asset.Document, id string) asset.Element {
	el := doc.CreateElement("div")
	el.SetAttr("id", id)
	return el
}

func TestInsert(t *testing.T) {
	const page = `<html><head><meta id="a"><meta id="b"></head><body><div id="tail"></div></body></html>`

	t.Run("first", func(t *testing.T) {
		doc := parse(t, page)
		head := doc.Head()
		if !asset.Insert(doc, head, newDiv(doc, "x"), asset.First) {
			t.Fatal("insert failed")
		}
		if got := strings.Join(childIDs(head), ","); got != "x,a,b" {
			t.Errorf("children = %s, want x,a,b", got)
		}
	})

	t.Run("first into empty", func(t *testing.T) {
		doc := parse(t, page)
		tail := doc.ElementByID("tail")
		if !asset.Insert(doc, tail, newDiv(doc, "x"), asset.First) {
			t.Fatal("insert failed")
		}
		if got := strings.Join(childIDs(tail), ","); got != "x" {
			t.Errorf("children = %s, want x", got)
		}
	})

	t.Run("last", func(t *testing.T) {
		doc := parse(t, page)
		head := doc.Head()
		if !asset.Insert(doc, head, newDiv(doc, "x"), asset.Last) {
			t.Fatal("insert failed")
		}
		if got := strings.Join(childIDs(head), ","); got != "a,b,x" {
			t.Errorf("children = %s, want a,b,x", got)
		}
	})

	t.Run("after", func(t *testing.T) {
		doc := parse(t, page)
		head := doc.Head()
		if !asset.Insert(doc, doc.ElementByID("tail"), newDiv(doc, "x"), asset.After("a")) {
			t.Fatal("insert failed")
		}
		if got := strings.Join(childIDs(head), ","); got != "a,x,b" {
			t.Errorf("children = %s, want a,x,b", got)
		}
	})

	t.Run("after missing anchor", func(t *testing.T) {
		doc := parse(t, page)
		before := doc.String()
		if asset.Insert(doc, doc.Head(), newDiv(doc, "x"), asset.After("nope")) {
			t.Fatal("insert should fail")
		}
		if doc.String() != before {
			t.Error("document changed after failed insert")
		}
	})

	t.Run("after last sibling", func(t *testing.T) {
		doc := parse(t, page)
		before := doc.String()
		if asset.Insert(doc, doc.Head(), newDiv(doc, "x"), asset.After("b")) {
			t.Fatal("insert after the last element should fail")
		}
		if doc.String() != before {
			t.Error("document changed after failed insert")
		}
	})

	t.Run("nil container", func(t *testing.T) {
		doc := parse(t, page)
		if asset.Insert(doc, nil, newDiv(doc, "x"), asset.Last) {
			t.Error("insert into nil container should fail")
		}
	})
}

func TestBuild(t *testing.T) {
	doc := htmldom.New()

	el, err := asset.Build(doc, asset.Request{Kind: "js", ID: "jquery", URL: "/jquery.js"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if el.Tag() != "script" || el.Attr("src") != "/jquery.js" || el.Attr("id") != "jquery" {
		t.Errorf("script built wrong: tag=%s src=%s id=%s", el.Tag(), el.Attr("src"), el.Attr("id"))
	}

	el, err = asset.Build(doc, asset.Request{Kind: "css", URL: "/site.css"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if el.Tag() != "link" || el.Attr("href") != "/site.css" || el.Attr("rel") != "stylesheet" {
		t.Errorf("link built wrong: tag=%s href=%s rel=%s", el.Tag(), el.Attr("href"), el.Attr("rel"))
	}

	if _, err := asset.Build(doc, asset.Request{Kind: "png", URL: "/a.png"}, nil); err == nil {
		t.Error("png should be unsupported")
	}
}

func TestApplyClass(t *testing.T) {
	doc := parse(t, `<html><body><div id="logo" class="big"></div></body></html>`)
	logo := doc.ElementByID("logo")

	steps := []struct {
		action asset.ClassAction
		c1, c2 string
		want   string
	}{
		{asset.ClassAdd, "appear", "", "big appear"},
		{asset.ClassAdd, "appear", "", "big appear"},
		{asset.ClassReplace, "appear", "vanish", "big vanish"},
		{asset.ClassToggle, "big", "", "vanish"},
		{asset.ClassToggle, "big", "", "vanish big"},
		{asset.ClassRemove, "vanish", "", "big"},
		{asset.ClassSet, "one two", "", "one two"},
		{asset.ClassClear, "", "", ""},
	}
	for _, s := range steps {
		if err := asset.ApplyClass(logo, s.action, s.c1, s.c2); err != nil {
			t.Fatal(err)
		}
		if got := logo.Attr("class"); got != s.want {
			t.Fatalf("after %s %s: class = %q, want %q", s.action, s.c1, got, s.want)
		}
	}
	if err := asset.ApplyClass(logo, "explode", "", ""); err == nil {
		t.Error("unknown action should fail")
	}
	if err := asset.ApplyClass(nil, asset.ClassAdd, "x", ""); err != nil {
		t.Errorf("nil element: %v", err)
	}
}
