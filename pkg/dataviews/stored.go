package dataviews

import (
	"github.com/BigRLab/thedom/pkg/display"
	"github.com/BigRLab/thedom/pkg/inputs"
	"github.com/BigRLab/thedom/pkg/node"
)

// StoredValue shows a text while submitting a separate hidden value.
type StoredValue struct {
	node.Element
	label *display.Label
	value *inputs.HiddenValue
}

var storedValueProperties = node.BaseProperties().
	Text("text", func(n node.Node, v string) { n.(*StoredValue).label.SetText(v) }).
	Method("value", nil, func(n node.Node, v any) error {
		n.(*StoredValue).value.SetValue(v)
		return nil
	})

// NewStoredValue creates a stored value. The hidden input carries id and name.
func NewStoredValue(id, name string) *StoredValue {
	s := &StoredValue{
		label: display.NewFreeText("", ""),
		value: inputs.NewHiddenValue(id, name),
	}
	s.Init(s, "span", "", "")
	s.UseProperties(storedValueProperties)
	_ = s.Element.AddChildren(s.label, s.value)
	s.SetAccessor("label", s.label)
	s.SetAccessor("value", s.value)
	return s
}

// Text returns the displayed text.
func (s *StoredValue) Text() string { return s.label.Text() }

// SetText replaces the displayed text.
func (s *StoredValue) SetText(text string) { s.label.SetText(text) }

// Value returns the submitted value.
func (s *StoredValue) Value() any { return s.value.Value() }

// SetValue replaces the submitted value.
func (s *StoredValue) SetValue(value any) { s.value.SetValue(value) }
