package asset

// Insert places el relative to container according to anchor and reports
// whether it was placed. An After anchor resolves against the whole
// document, not container; when the anchor element is missing or is the
// last element among its siblings, el is left detached.
func Insert(doc Document, container, el Element, anchor Anchor) bool {
	switch {
	case anchor.IsFirst():
		if container == nil {
			return false
		}
		container.Prepend(el)
		return true
	case anchor.IsLast():
		if container == nil {
			return false
		}
		container.Append(el)
		return true
	}

	ref := doc.ElementByID(anchor.AfterID())
	if ref == nil {
		return false
	}
	next := ref.NextSibling()
	if next == nil {
		return false
	}
	parent := next.Parent()
	if parent == nil {
		return false
	}
	parent.InsertBefore(el, next)
	return true
}
