package node

import (
	"reflect"

	"github.com/BigRLab/thedom/pkg/dictutil"
	"github.com/BigRLab/thedom/pkg/signal"
)

// Signals every element declares.
const (
	SignalHidden          = "hidden"
	SignalShown           = "shown"
	SignalBeforeToHTML    = "beforeToHtml"
	SignalChildAdded      = "childAdded"
	SignalEditableChanged = "editableChanged"
)

// Node is implemented by *Element and by every widget embedding it.
// Tree operations call through this interface so widget overrides apply.
type Node interface {
	// Base returns the embedded element.
	Base() *Element
	// AddChild attaches a child; containers override it to route children.
	AddChild(child Node) error
	StartTag() string
	Content(formatted bool) string
	EndTag() string
	ToHTML(formatted bool) string
	InsertVariables(vars map[string]any)
	ExportVariables(out map[string]any, flat bool)
	Properties() *PropertySet
}

// Element is the base markup node.
type Element struct {
	signal.Connectable

	self       Node
	kind       string
	tagName    string
	selfCloses bool
	childless  bool

	id        string
	name      string
	prefix    string
	hasPrefix bool

	parent      Node
	children    []Node
	childTarget Node
	accessors   map[string]Node

	classes    []string
	style      *dictutil.OrderedMap
	attributes *dictutil.OrderedMap

	editable  *bool
	key       string
	validator string

	scriptContainer ScriptContainer
	pendingScripts  []Script

	props *PropertySet
}

// New creates a plain element. The name defaults to the id.
func New(tag, id, name string) *Element {
	e := &Element{}
	e.Init(e, tag, id, name)
	return e
}

// Init prepares an embedded element. self must be the outer widget so that
// overridden methods are used when the tree is walked.
func (e *Element) Init(self Node, tag, id, name string) {
	e.self = self
	e.tagName = tag
	e.id = id
	e.name = name
	if name == "" {
		e.name = id
	}
	if e.kind == "" {
		t := reflect.TypeOf(self)
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		e.kind = t.Name()
	}
	e.Declare(SignalHidden, SignalShown, SignalBeforeToHTML, SignalChildAdded, SignalEditableChanged)
}

// Base returns e.
func (e *Element) Base() *Element { return e }

func (e *Element) node() Node {
	if e.self == nil {
		return e
	}
	return e.self
}

// Kind returns the widget type name used in tree dumps.
func (e *Element) Kind() string { return e.kind }

// SetKind overrides the widget type name.
func (e *Element) SetKind(kind string) { e.kind = kind }

// TagName returns the rendered tag name.
func (e *Element) TagName() string { return e.tagName }

// SetTagName changes the rendered tag. An empty tag renders children only.
func (e *Element) SetTagName(tag string) { e.tagName = tag }

// SelfCloses reports whether the tag renders as <tag />.
func (e *Element) SelfCloses() bool { return e.selfCloses }

// SetSelfCloses marks the tag as self closing.
func (e *Element) SetSelfCloses(v bool) { e.selfCloses = v }

// AllowsChildren reports whether children may be added.
func (e *Element) AllowsChildren() bool { return !e.childless }

// SetAllowsChildren enables or disables adding children.
func (e *Element) SetAllowsChildren(v bool) { e.childless = !v }

// ID returns the element id without prefix.
func (e *Element) ID() string { return e.id }

// SetID changes the element id.
func (e *Element) SetID(id string) { e.id = id }

// Name returns the element name without prefix.
func (e *Element) Name() string { return e.name }

// SetName changes the element name.
func (e *Element) SetName(name string) { e.name = name }

// Key returns the dot path used for nested request binding.
func (e *Element) Key() string { return e.key }

// SetKey sets the dot path used for nested request binding.
func (e *Element) SetKey(key string) { e.key = key }

// Validator returns the validator name attached to the element.
func (e *Element) Validator() string { return e.validator }

// SetValidator attaches a validator name.
func (e *Element) SetValidator(v string) { e.validator = v }

// SetPrefix sets the prefix placed before the id and name of the element and
// its descendants. A single space clears any inherited prefix.
func (e *Element) SetPrefix(prefix string) {
	e.prefix = prefix
	e.hasPrefix = true
}

// ClearPrefix makes the element inherit its prefix again.
func (e *Element) ClearPrefix() {
	e.prefix = ""
	e.hasPrefix = false
}

// Prefix returns the element's prefix or the nearest ancestor's.
func (e *Element) Prefix() string {
	if !e.hasPrefix {
		if e.parent != nil {
			return e.parent.Base().Prefix()
		}
		return ""
	}
	if e.prefix == " " {
		return ""
	}
	return e.prefix
}

// FullID returns prefix + id, or "" when the element has no id.
func (e *Element) FullID() string {
	if e.id == "" {
		return ""
	}
	return e.Prefix() + e.id
}

// FullName returns prefix + name, or "" when the element has no name.
func (e *Element) FullName() string {
	if e.name == "" {
		return ""
	}
	return e.Prefix() + e.name
}

// Properties returns the property table of the element.
func (e *Element) Properties() *PropertySet {
	if e.props == nil {
		return baseProperties
	}
	return e.props
}

// UseProperties replaces the property table.
func (e *Element) UseProperties(ps *PropertySet) { e.props = ps }

// SetAccessor registers a named sub-element, used by delegated properties.
func (e *Element) SetAccessor(name string, n Node) {
	if e.accessors == nil {
		e.accessors = make(map[string]Node)
	}
	e.accessors[name] = n
}

// Accessor returns the sub-element registered under name.
func (e *Element) Accessor(name string) Node {
	return e.accessors[name]
}

// Editable reports whether input elements in this subtree accept edits.
// Unset elements inherit from their parent; the root default is true.
func (e *Element) Editable() bool {
	if e.editable != nil {
		return *e.editable
	}
	if e.parent != nil {
		return e.parent.Base().Editable()
	}
	return true
}

// SetEditable fixes the editable state and emits editableChanged.
func (e *Element) SetEditable(editable bool) {
	e.editable = &editable
	e.Emit(SignalEditableChanged, editable)
}

// Hide sets display:none and emits hidden when the state changes.
func (e *Element) Hide() {
	if v, _ := e.StyleValue("display"); v != "none" {
		e.SetStyle("display", "none")
		e.Emit(SignalHidden)
	}
}

// Show sets display:block and emits shown when the state changes.
func (e *Element) Show() {
	if v, _ := e.StyleValue("display"); v != "block" {
		e.SetStyle("display", "block")
		e.Emit(SignalShown)
	}
}

// Shown reports whether the element is not hidden.
func (e *Element) Shown() bool {
	v, _ := e.StyleValue("display")
	return v != "none"
}

var blockTags = map[string]bool{
	"address": true, "blockquote": true, "center": true, "dir": true, "div": true, "dl": true,
	"fieldset": true, "form": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"h6": true, "hr": true, "isindex": true, "menu": true, "noframes": true, "noscript": true,
	"ol": true, "p": true, "pre": true, "table": true, "ul": true, "dd": true, "dt": true,
	"frameset": true, "li": true, "tbody": true, "td": true, "tfoot": true, "th": true,
	"thead": true, "tr": true,
}

// IsBlockElement reports whether the element renders as a block.
func (e *Element) IsBlockElement() bool {
	return blockTags[e.tagName] || e.HasClass("WBlock")
}

// On connects slot to a signal the element declares. Connecting to an
// undeclared signal is a programming error and panics.
func (e *Element) On(name string, slot signal.Slot, opts ...signal.Option) *signal.Connection {
	conn, err := e.Connect(name, slot, opts...)
	if err != nil {
		panic(err)
	}
	return conn
}
