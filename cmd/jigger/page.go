package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"tractor.dev/jigger/asset"
	"tractor.dev/jigger/asset/htmldom"
	"tractor.dev/jigger/internal/config"
)

const wasmLoader = `const go = new Go();
WebAssembly.instantiateStreaming(fetch("/jigger.wasm"), go.importObject).then((r) => go.run(r.instance));`

// renderPage returns src with the loader added to the top of head: the
// page config, wasm_exec.js, then the script that starts jigger.wasm. An
// empty src renders the skeleton page.
func renderPage(src io.Reader, cfg *config.Config, reportURL string) ([]byte, error) {
	var doc *htmldom.Document
	if src == nil {
		doc = htmldom.New()
	} else {
		var err error
		doc, err = htmldom.Parse(src)
		if err != nil {
			return nil, err
		}
	}
	head := doc.Head()
	if head == nil {
		return nil, fmt.Errorf("page has no head")
	}

	pageCfg := *cfg
	if pageCfg.Report.URL == "" {
		pageCfg.Report.URL = reportURL
	}
	data, err := json.Marshal(&pageCfg)
	if err != nil {
		return nil, err
	}
	// keep "</script>" inside strings from closing the element
	js := strings.ReplaceAll(string(data), "</", `<\/`)

	// each is inserted first, so add them in reverse
	for _, s := range []struct{ id, src, text string }{
		{id: "jigger-start", text: wasmLoader},
		{id: "jigger-runtime", src: "/wasm_exec.js"},
		{id: "jigger-config", text: "var jiggerConfig = " + js + ";"},
	} {
		el := doc.CreateElement("script").(*htmldom.Element)
		el.SetAttr("id", s.id)
		if s.src != "" {
			el.SetAttr("src", s.src)
		} else {
			el.SetText(s.text)
		}
		asset.Insert(doc, head, el, asset.First)
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
