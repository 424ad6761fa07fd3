package asset

import "log/slog"

// Request describes one asset to load.
type Request struct {
	Kind   string // script, js, link or css
	ID     string
	URL    string
	Tail   bool // insert into the tail marker instead of head
	Anchor Anchor

	OnLoad  func()
	OnError func(error)
}

// Build creates the element for r without inserting it. When r has no
// handlers, the element gets handlers that only log the outcome.
func Build(doc Document, r Request, logger *slog.Logger) (Element, error) {
	kind, err := ParseKind(r.Kind)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	var el Element
	switch kind {
	case Script:
		el = doc.CreateElement("script")
		el.SetBool("async", false)
		el.SetBool("defer", true)
		el.SetAttr("type", "application/javascript")
		el.SetAttr("src", r.URL)
	case Stylesheet:
		el = doc.CreateElement("link")
		el.SetAttr("rel", "stylesheet")
		el.SetAttr("type", "text/css")
		el.SetAttr("href", r.URL)
	}
	if r.ID != "" {
		el.SetAttr("id", r.ID)
	}

	onLoad := r.OnLoad
	if onLoad == nil {
		onLoad = func() {
			logger.Info("asset loaded", "url", r.URL)
		}
	}
	onError := r.OnError
	if onError == nil {
		onError = func(err error) {
			logger.Warn("asset load failed", "url", r.URL, "err", err)
		}
	}
	el.OnLoad(onLoad)
	el.OnError(onError)
	return el, nil
}

// URLOf returns the resource URL an element built by Build points at.
func URLOf(el Element) string {
	switch el.Tag() {
	case "script":
		return el.Attr("src")
	case "link":
		return el.Attr("href")
	}
	return ""
}
