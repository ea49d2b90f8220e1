package node

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BigRLab/thedom/pkg/dictutil"
	"github.com/BigRLab/thedom/pkg/schema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Action selects what applying a property does.
type Action int

const (
	// ActionAttribute stores the value as a markup attribute.
	ActionAttribute Action = iota
	// ActionEvent appends the value as a client side event handler.
	ActionEvent
	// ActionCall invokes Call when the value is truthy.
	ActionCall
	// ActionMethod passes the value to Set.
	ActionMethod
)

func (a Action) String() string {
	switch a {
	case ActionAttribute:
		return "attribute"
	case ActionEvent:
		return "javascriptEvent"
	case ActionCall:
		return "call"
	case ActionMethod:
		return "method"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Property describes how an external name/value pair configures an element.
type Property struct {
	Name   string
	Action Action
	// Target is the attribute or event name; it defaults to Name.
	Target string
	// Type coerces the incoming value before it is applied. nil keeps it unchanged.
	Type schema.Type
	// Path is a dot separated chain of accessors leading to the element the
	// property applies to.
	Path string
	Call func(Node)
	Set  func(Node, any) error
	Doc  string
}

func (p Property) target() string {
	if p.Target != "" {
		return p.Target
	}
	return p.Name
}

// Apply coerces value and applies the property to n.
func (p Property) Apply(n Node, value any) error {
	target, err := resolveAccessor(n, p.Path)
	if err != nil {
		return err
	}
	if p.Type != nil {
		if value, err = p.Type.Coerce(value); err != nil {
			return err
		}
	}
	switch p.Action {
	case ActionAttribute:
		target.Base().SetAttribute(p.target(), value)
	case ActionEvent:
		target.Base().AddJavascriptEvent(p.target(), Stringify(value))
	case ActionCall:
		if truthy(value) && p.Call != nil {
			p.Call(target)
		}
	case ActionMethod:
		if p.Set == nil {
			return fmt.Errorf("no setter for %s", p.Name)
		}
		return p.Set(target, value)
	}
	return nil
}

func resolveAccessor(n Node, path string) (Node, error) {
	if path == "" {
		return n, nil
	}
	for _, name := range strings.Split(path, ".") {
		next := n.Base().Accessor(name)
		if next == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAccessor, name)
		}
		n = next
	}
	return n, nil
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	default:
		return true
	}
}

// PropertySet is an ordered table of properties keyed by name.
type PropertySet struct {
	m *orderedmap.OrderedMap[string, Property]
}

// NewPropertySet creates an empty table.
func NewPropertySet() *PropertySet {
	return &PropertySet{m: orderedmap.New[string, Property]()}
}

// BaseProperties returns a copy of the properties every element understands.
func BaseProperties() *PropertySet {
	return baseProperties.Clone()
}

// Add registers p, replacing an existing property of the same name in place.
func (s *PropertySet) Add(p Property) *PropertySet {
	s.m.Set(p.Name, p)
	return s
}

// Attribute registers a property stored as the attribute of the same name.
func (s *PropertySet) Attribute(name string, t schema.Type) *PropertySet {
	return s.Add(Property{Name: name, Action: ActionAttribute, Type: t})
}

// AttributeAs registers a property stored under a different attribute name.
func (s *PropertySet) AttributeAs(name, attribute string, t schema.Type) *PropertySet {
	return s.Add(Property{Name: name, Action: ActionAttribute, Target: attribute, Type: t})
}

// Event registers a property that appends a handler to the event of the same name.
func (s *PropertySet) Event(name string) *PropertySet {
	return s.Add(Property{Name: name, Action: ActionEvent, Type: schema.String()})
}

// Call registers a boolean property that invokes fn when true.
func (s *PropertySet) Call(name string, fn func(Node)) *PropertySet {
	return s.Add(Property{Name: name, Action: ActionCall, Type: schema.Bool(), Call: fn})
}

// Method registers a property that passes the coerced value to fn.
func (s *PropertySet) Method(name string, t schema.Type, fn func(Node, any) error) *PropertySet {
	return s.Add(Property{Name: name, Action: ActionMethod, Type: t, Set: fn})
}

// Text registers a string property handled by fn.
func (s *PropertySet) Text(name string, fn func(Node, string)) *PropertySet {
	return s.Method(name, schema.String(), func(n Node, v any) error {
		fn(n, v.(string))
		return nil
	})
}

// Flag registers a boolean property handled by fn.
func (s *PropertySet) Flag(name string, fn func(Node, bool)) *PropertySet {
	return s.Method(name, schema.Bool(), func(n Node, v any) error {
		fn(n, v.(bool))
		return nil
	})
}

// Remove drops a property.
func (s *PropertySet) Remove(name string) *PropertySet {
	s.m.Delete(name)
	return s
}

// Get returns the property registered under name.
func (s *PropertySet) Get(name string) (Property, bool) {
	return s.m.Get(name)
}

// Names returns the property names in declaration order.
func (s *PropertySet) Names() []string {
	names := make([]string, 0, s.m.Len())
	for p := s.m.Oldest(); p != nil; p = p.Next() {
		names = append(names, p.Key)
	}
	return names
}

// All returns the properties in declaration order.
func (s *PropertySet) All() []Property {
	out := make([]Property, 0, s.m.Len())
	for p := s.m.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Value)
	}
	return out
}

// Len returns the number of properties.
func (s *PropertySet) Len() int { return s.m.Len() }

// Clone returns an independent copy.
func (s *PropertySet) Clone() *PropertySet {
	out := NewPropertySet()
	for p := s.m.Oldest(); p != nil; p = p.Next() {
		out.m.Set(p.Key, p.Value)
	}
	return out
}

// Extend adds every property of other.
func (s *PropertySet) Extend(other *PropertySet) *PropertySet {
	for p := other.m.Oldest(); p != nil; p = p.Next() {
		s.m.Set(p.Key, p.Value)
	}
	return s
}

// Delegate exposes every property of child as "accessor.name", applied to
// the sub-element registered under accessor.
func (s *PropertySet) Delegate(accessor string, child *PropertySet) *PropertySet {
	for p := child.m.Oldest(); p != nil; p = p.Next() {
		prop := p.Value
		prop.Target = prop.target()
		prop.Name = accessor + "." + p.Key
		if prop.Path == "" {
			prop.Path = accessor
		} else {
			prop.Path = accessor + "." + prop.Path
		}
		s.m.Set(prop.Name, prop)
	}
	return s
}

// Schema returns the types of every typed property.
func (s *PropertySet) Schema() schema.Schema {
	out := make(schema.Schema, s.m.Len())
	for p := s.m.Oldest(); p != nil; p = p.Next() {
		if p.Value.Type != nil {
			out[p.Key] = p.Value.Type
		}
	}
	return out
}

// SetProperty applies one named property to n.
func SetProperty(n Node, name string, value any) error {
	p, ok := n.Properties().Get(name)
	if !ok {
		return &PropertyError{Property: name, Err: ErrUnknownProperty}
	}
	if err := p.Apply(n, value); err != nil {
		return &PropertyError{Property: name, Err: err}
	}
	return nil
}

// SetProperties applies every known, non-nil property of props in
// declaration order. Unknown names are ignored. Failures are aggregated.
func SetProperties(n Node, props map[string]any) error {
	if len(props) == 0 {
		return nil
	}
	var errs []error
	for _, p := range n.Properties().All() {
		value, ok := props[p.Name]
		if !ok || value == nil {
			continue
		}
		if err := p.Apply(n, value); err != nil {
			errs = append(errs, &PropertyError{Property: p.Name, Err: err})
		}
	}
	if len(errs) > 0 {
		return &schema.AggregateError{Errors: errs}
	}
	return nil
}

// SetPropertyPairs applies properties in the given order, ignoring unknown
// names and nil values.
func SetPropertyPairs(n Node, pairs ...dictutil.Pair) error {
	var errs []error
	for _, pair := range pairs {
		p, ok := n.Properties().Get(pair.Key)
		if !ok || pair.Value == nil {
			continue
		}
		if err := p.Apply(n, pair.Value); err != nil {
			errs = append(errs, &PropertyError{Property: pair.Key, Err: err})
		}
	}
	if len(errs) > 0 {
		return &schema.AggregateError{Errors: errs}
	}
	return nil
}

var baseProperties = NewPropertySet().
	Method("style", schema.String(), func(n Node, v any) error {
		return n.Base().SetStyleFromString(v.(string))
	}).
	Text("class", func(n Node, v string) { n.Base().AddClassesFromString(v) }).
	Method("javascriptEvents", nil, setJavascriptEvents).
	Call("hide", func(n Node) { n.Base().Hide() }).
	Attribute("title", nil).
	Attribute("lang", nil).
	Text("key", func(n Node, v string) { n.Base().SetKey(v) }).
	Text("validator", func(n Node, v string) { n.Base().SetValidator(v) }).
	Call("uneditable", func(n Node) { n.Base().SetEditable(false) }).
	Attribute("contenteditable", nil).
	Attribute("draggable", nil).
	Attribute("hidden", schema.Bool()).
	Attribute("tabindex", schema.Int()).
	Attribute("accesskey", nil)

func setJavascriptEvents(n Node, v any) error {
	switch events := v.(type) {
	case map[string]string:
		n.Base().AddJavascriptEvents(events)
	case map[string]any:
		names := make([]string, 0, len(events))
		for name := range events {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			n.Base().AddJavascriptEvent(name, Stringify(events[name]))
		}
	default:
		return fmt.Errorf("expected event map, got %T", v)
	}
	return nil
}
