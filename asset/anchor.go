package asset

// Anchor says where an inserted element lands among its siblings. The zero
// Anchor is Last.
type Anchor struct {
	first bool
	after string
}

var (
	First = Anchor{first: true}
	Last  = Anchor{}
)

// After anchors an element directly after the element with the given id.
func After(id string) Anchor {
	return Anchor{after: id}
}

// ParseAnchor maps "first" and "last" to their anchors, the empty string
// to Last, and anything else to After(s).
func ParseAnchor(s string) Anchor {
	switch s {
	case "first":
		return First
	case "", "last":
		return Last
	}
	return After(s)
}

func (a Anchor) IsFirst() bool { return a.first }

func (a Anchor) IsLast() bool { return !a.first && a.after == "" }

// AfterID returns the id of the anchor element, or "" for First and Last.
func (a Anchor) AfterID() string { return a.after }

func (a Anchor) String() string {
	switch {
	case a.first:
		return "first"
	case a.after == "":
		return "last"
	}
	return "after:" + a.after
}
