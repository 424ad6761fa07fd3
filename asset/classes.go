package asset

import (
	"fmt"
	"slices"
	"strings"
)

type ClassAction string

const (
	ClassSet     ClassAction = "set"
	ClassClear   ClassAction = "clear"
	ClassAdd     ClassAction = "add"
	ClassRemove  ClassAction = "remove"
	ClassReplace ClassAction = "replace"
	ClassToggle  ClassAction = "toggle"
)

// ApplyClass changes the class list of el. c2 is only used by
// ClassReplace, which removes c1 and adds c2.
func ApplyClass(el Element, action ClassAction, c1, c2 string) error {
	if el == nil {
		return nil
	}
	classes := strings.Fields(el.Attr("class"))
	switch ClassAction(strings.ToLower(string(action))) {
	case ClassSet:
		classes = strings.Fields(c1)
	case ClassClear:
		classes = nil
	case ClassAdd:
		classes = addClass(classes, c1)
	case ClassRemove:
		classes = removeClass(classes, c1)
	case ClassReplace:
		classes = addClass(removeClass(classes, c1), c2)
	case ClassToggle:
		if slices.Contains(classes, c1) {
			classes = removeClass(classes, c1)
		} else {
			classes = addClass(classes, c1)
		}
	default:
		return fmt.Errorf("unknown class action %q", action)
	}
	el.SetAttr("class", strings.Join(classes, " "))
	return nil
}

func addClass(classes []string, c string) []string {
	if c == "" || slices.Contains(classes, c) {
		return classes
	}
	return append(classes, c)
}

func removeClass(classes []string, c string) []string {
	return slices.DeleteFunc(classes, func(s string) bool { return s == c })
}

// Transitions are the page effects run around a batch. Begin runs when a
// batch is submitted, Arrived on every parity once the page is ready.
type Transitions struct {
	Begin   func()
	Arrived func()
}

// ClassTransitions shows the logo element and hides the wrapper element
// while a batch loads, and swaps them back when it arrives. Missing
// elements are skipped.
func ClassTransitions(doc Document, logo, wrapper string) Transitions {
	apply := func(id string, action ClassAction, c1, c2 string) {
		if id == "" {
			return
		}
		ApplyClass(doc.ElementByID(id), action, c1, c2)
	}
	return Transitions{
		Begin: func() {
			apply(logo, ClassAdd, "appear", "")
			apply(wrapper, ClassAdd, "vanish", "")
		},
		Arrived: func() {
			apply(logo, ClassReplace, "appear", "vanish")
			apply(wrapper, ClassReplace, "vanish", "appear")
		},
	}
}
