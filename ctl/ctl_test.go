package ctl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tractor.dev/jigger/asset"
	"tractor.dev/jigger/asset/htmldom"
)

func TestExec(t *testing.T) {
	doc := htmldom.New()
	s := asset.NewSession(doc, asset.Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	ctx := context.Background()

	if err := Exec(ctx, s, "batch a.js b.css a.js"); err != nil {
		t.Fatal(err)
	}
	if got := s.Snapshot().URLs; len(got) != 2 {
		t.Fatalf("registry = %v", got)
	}

	if err := Exec(ctx, s, "load js jquery /jquery.js tail first"); err != nil {
		t.Fatal(err)
	}
	el := doc.ElementByID("jquery")
	if el == nil || el.Parent().Attr("id") != "tail" {
		t.Fatal("jquery not loaded into tail")
	}
	if el.NextSibling() == nil || el.NextSibling().Attr("id") != "a.js" {
		t.Error("jquery should be first in tail")
	}

	if err := Exec(ctx, s, "cls tail add busy"); err != nil {
		t.Fatal(err)
	}
	if c := doc.ElementByID("tail").Attr("class"); c != "busy" {
		t.Errorf("tail class = %q, want busy", c)
	}

	if err := Exec(ctx, s, "   "); err != nil {
		t.Errorf("blank line: %v", err)
	}
}
