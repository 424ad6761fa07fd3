package asset

// Document is the part of a DOM the loader needs. The browser build backs
// it with syscall/js; htmldom backs it with an HTML tree.
type Document interface {
	CreateElement(tag string) Element
	// ElementByID returns nil when no element has the id.
	ElementByID(id string) Element
	// Head returns nil when the document has no head.
	Head() Element
}

// Element is a node that can carry attributes, children and load events.
// Methods returning an Element return a nil interface for "none".
type Element interface {
	Tag() string
	Attr(name string) string
	SetAttr(name, value string)
	// SetBool sets a boolean property, such as a script's async flag.
	SetBool(name string, v bool)

	Parent() Element
	// NextSibling returns the next element sibling, skipping text nodes.
	NextSibling() Element
	Prepend(child Element)
	Append(child Element)
	InsertBefore(child, ref Element)

	// OnLoad and OnError replace any handler set before. They fire once the
	// element is in a document and its resource finished or failed.
	OnLoad(fn func())
	OnError(fn func(error))
}
