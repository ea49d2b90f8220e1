package node

import (
	"fmt"
	"reflect"

	"github.com/BigRLab/thedom/pkg/dictutil"
)

// SignalValueChanged is emitted by value elements when their value changes.
const SignalValueChanged = "valueChanged"

// Valued is a node holding a user editable value.
type Valued interface {
	Node
	Value() any
	SetValue(value any)
}

// ValueElement is the base of every element bound to request data.
type ValueElement struct {
	Element
	valued Valued
	value  any
}

// NewValueElement creates a plain value element.
func NewValueElement(tag, id, name string) *ValueElement {
	v := &ValueElement{}
	v.InitValue(v, tag, id, name)
	return v
}

// InitValue prepares an embedded value element. The value starts as "" and
// is rendered through the value attribute.
func (v *ValueElement) InitValue(self Valued, tag, id, name string) {
	v.Init(self, tag, id, name)
	v.valued = self
	v.value = ""
	v.Declare(SignalValueChanged)
	v.SetAttribute("value", AttrFunc(func() any { return v.valued.Value() }))
	v.UseProperties(valueProperties)
}

// Value returns the current value.
func (v *ValueElement) Value() any { return v.value }

// SetValue stores value and emits valueChanged when it differs.
func (v *ValueElement) SetValue(value any) {
	if reflect.DeepEqual(value, v.value) {
		return
	}
	v.value = value
	v.Emit(SignalValueChanged, value)
}

// RawValue returns the stored value without dispatching to overrides.
func (v *ValueElement) RawValue() any { return v.value }

// StoreValue sets the value without comparing or emitting.
func (v *ValueElement) StoreValue(value any) { v.value = value }

// InsertVariables binds children first, then looks up this element's value by
// key, full id, id, full name and name. A list value yields its first item;
// the rest is written back and the entry is kept for later elements.
func (v *ValueElement) InsertVariables(vars map[string]any) {
	v.Element.InsertVariables(vars)
	value, remove := v.LookupValue(vars)
	if value != nil {
		v.valued.SetValue(value)
	}
	if remove {
		v.RemoveFromRequest(vars)
	}
}

// LookupValue finds the request value addressed to the element. The second
// result reports whether the addressing entries should be removed.
func (v *ValueElement) LookupValue(vars map[string]any) (any, bool) {
	remove := true
	var value any
	take := func(key string) {
		raw, ok := vars[key]
		if !ok || raw == nil {
			return
		}
		list, isList := asList(raw)
		if !isList || len(list) == 0 {
			value = raw
			return
		}
		if len(list) > 1 {
			remove = false
			vars[key] = list[1:]
		}
		value = list[0]
	}
	if v.key != "" {
		value = dictutil.GetNested(vars, v.key, nil)
	}
	if value == nil && v.FullID() != "" {
		take(v.FullID())
	}
	if value == nil && v.id != "" {
		take(v.id)
	}
	if value == nil && v.name != "" {
		if raw, ok := vars[v.FullName()]; ok && raw != nil {
			take(v.FullName())
		} else {
			take(v.name)
		}
	}
	return value, remove
}

// RemoveFromRequest deletes the entries addressing this element.
func (v *ValueElement) RemoveFromRequest(vars map[string]any) {
	for _, k := range []string{v.id, v.name, v.FullID(), v.FullName()} {
		delete(vars, k)
	}
}

// ExportVariables writes the value under the element's name (or id) when
// flat, or under its key otherwise. Repeated flat names collect into a list.
func (v *ValueElement) ExportVariables(out map[string]any, flat bool) {
	value := v.valued.Value()
	switch {
	case flat && v.name != "":
		prev, ok := out[v.name]
		if !ok {
			out[v.name] = value
			break
		}
		if list, isList := prev.([]any); isList {
			out[v.name] = append(list, value)
		} else {
			out[v.name] = []any{prev, value}
		}
	case flat && v.id != "":
		out[v.id] = value
	case !flat && v.key != "":
		dictutil.SetNested(out, v.key, value)
	}
	v.Element.ExportVariables(out, flat)
}

func asList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []string:
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}

func setValue(n Node, value any) error {
	valued, ok := n.(Valued)
	if !ok {
		return fmt.Errorf("%s does not hold a value", n.Base().Kind())
	}
	valued.SetValue(value)
	return nil
}

// ValueProperties returns a copy of the properties of value elements.
func ValueProperties() *PropertySet {
	return valueProperties.Clone()
}

var valueProperties = BaseProperties().
	Method("text", nil, setValue).
	Method("value", nil, setValue).
	Attribute("tabindex", nil).
	Event("onchange").
	Event("onclick").
	Event("onblur")
