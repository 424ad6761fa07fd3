package asset

import (
	"fmt"
	"strings"
)

type Kind int

const (
	Script Kind = iota + 1
	Stylesheet
)

func (k Kind) String() string {
	switch k {
	case Script:
		return "script"
	case Stylesheet:
		return "stylesheet"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts the names a page uses for an asset: "script" or "js"
// for scripts, "link" or "css" for stylesheets.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "script", "js":
		return Script, nil
	case "link", "css":
		return Stylesheet, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
}
