package node

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/BigRLab/thedom/pkg/dictutil"
)

// Marker values with special rendering in StartTag.
const (
	// Blank renders the attribute with an empty value: key="".
	Blank = "<BLANK>"
	// Empty renders the attribute name alone: key.
	Empty = "<EMPTY>"
)

// Events is the list of client side handlers bound to one event attribute.
type Events []string

// AttrFunc is an attribute value computed at render time.
type AttrFunc func() any

// Stringify converts an attribute value to its markup text. nil, false and
// empty values produce "" and are omitted by StartTag.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return ""
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case Events:
		return strings.Join(v, "; ")
	case []string:
		return strings.Join(v, " ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s := Stringify(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	case AttrFunc:
		return Stringify(v())
	case func() any:
		return Stringify(v())
	case func() string:
		return v()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// --- classes ---

// Classes returns the CSS classes in insertion order.
func (e *Element) Classes() []string { return e.classes }

// HasClass reports whether class is set.
func (e *Element) HasClass(class string) bool {
	for _, c := range e.classes {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass adds class unless already present.
func (e *Element) AddClass(class string) {
	if class == "" || e.HasClass(class) {
		return
	}
	e.classes = append(e.classes, class)
}

// RemoveClass removes class if present.
func (e *Element) RemoveClass(class string) {
	for i, c := range e.classes {
		if c == class {
			e.classes = append(e.classes[:i], e.classes[i+1:]...)
			return
		}
	}
}

// ChooseClass removes every class in choices and then adds choice.
func (e *Element) ChooseClass(choices []string, choice string) {
	for _, c := range choices {
		e.RemoveClass(c)
	}
	e.AddClass(choice)
}

// SetClasses replaces every class.
func (e *Element) SetClasses(classes ...string) {
	e.classes = nil
	for _, c := range classes {
		e.AddClass(c)
	}
}

// AddClassesFromString adds each space separated class of s.
func (e *Element) AddClassesFromString(s string) {
	for _, c := range strings.Fields(s) {
		e.AddClass(c)
	}
}

// --- style ---

// SetStyle sets one inline style declaration.
func (e *Element) SetStyle(name, value string) {
	if e.style == nil {
		e.style = dictutil.NewOrderedMap()
	}
	e.style.Set(name, value)
}

// StyleValue returns one inline style declaration.
func (e *Element) StyleValue(name string) (string, bool) {
	if e.style == nil {
		return "", false
	}
	v, ok := e.style.Get(name)
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return s, true
}

// RemoveStyle deletes one inline style declaration.
func (e *Element) RemoveStyle(name string) {
	if e.style != nil {
		e.style.Delete(name)
	}
}

// Style returns the inline style declarations in insertion order.
func (e *Element) Style() []dictutil.Pair {
	if e.style == nil {
		return nil
	}
	return e.style.Pairs()
}

// StyleString renders the inline style as "name:value;" declarations.
func (e *Element) StyleString() string {
	if e.style == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range e.style.Pairs() {
		sb.WriteString(p.Key)
		sb.WriteString(":")
		sb.WriteString(Stringify(p.Value))
		sb.WriteString(";")
	}
	return sb.String()
}

// SetStyleFromString merges a "name: value; name: value" declaration list.
func (e *Element) SetStyleFromString(s string) error {
	for _, decl := range strings.Split(s, ";") {
		if strings.TrimSpace(decl) == "" {
			continue
		}
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			return fmt.Errorf("%w: %q", ErrMalformedStyle, decl)
		}
		e.SetStyle(strings.TrimSpace(name), strings.TrimSpace(value))
	}
	return nil
}

// --- attributes ---

// SetAttribute sets an attribute value. See Stringify for how values render.
func (e *Element) SetAttribute(name string, value any) {
	if e.attributes == nil {
		e.attributes = dictutil.NewOrderedMap()
	}
	e.attributes.Set(name, value)
}

// Attribute returns the raw attribute value.
func (e *Element) Attribute(name string) (any, bool) {
	if e.attributes == nil {
		return nil, false
	}
	return e.attributes.Get(name)
}

// AttributeString returns the rendered attribute value.
func (e *Element) AttributeString(name string) string {
	v, _ := e.Attribute(name)
	return Stringify(v)
}

// RemoveAttribute deletes an attribute.
func (e *Element) RemoveAttribute(name string) {
	if e.attributes != nil {
		e.attributes.Delete(name)
	}
}

// Attributes returns the attributes in insertion order.
func (e *Element) Attributes() []dictutil.Pair {
	if e.attributes == nil {
		return nil
	}
	return e.attributes.Pairs()
}

// --- client side events ---

// AddJavascriptEvent appends a handler to an event attribute such as onclick.
func (e *Element) AddJavascriptEvent(event, js string) {
	current, _ := e.Attribute(event)
	events, _ := current.(Events)
	e.SetAttribute(event, append(events[:len(events):len(events)], js))
}

// AddJavascriptEvents adds one handler per event, in sorted event order.
func (e *Element) AddJavascriptEvents(events map[string]string) {
	names := make([]string, 0, len(events))
	for name := range events {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		e.AddJavascriptEvent(name, events[name])
	}
}

// RemoveJavascriptEvent removes one handler, or every handler when js is empty.
func (e *Element) RemoveJavascriptEvent(event, js string) {
	if js == "" {
		e.RemoveAttribute(event)
		return
	}
	current, _ := e.Attribute(event)
	events, _ := current.(Events)
	kept := make(Events, 0, len(events))
	for _, h := range events {
		if h != js {
			kept = append(kept, h)
		}
	}
	if len(kept) == 0 {
		e.RemoveAttribute(event)
		return
	}
	e.SetAttribute(event, kept)
}

// JavascriptEvent returns the rendered handlers of an event.
func (e *Element) JavascriptEvent(event string) string {
	return e.AttributeString(event)
}
