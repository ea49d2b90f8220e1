// Package fields pairs a label, a user input and an error placeholder into
// a single form field.
package fields

import (
	"github.com/BigRLab/thedom/pkg/display"
	"github.com/BigRLab/thedom/pkg/inputs"
	"github.com/BigRLab/thedom/pkg/layout"
	"github.com/BigRLab/thedom/pkg/node"
)

// Field is implemented by every field type.
type Field interface {
	node.Valued
	Text() string
	SetText(text string)
	UserInput() node.Valued
	Label() *display.Label
}

// BaseField lays out a label next to a user input, with room for actions
// after the input and a form error below.
type BaseField struct {
	layout.Box

	column          *layout.Vertical
	inputContainer  *layout.Horizontal
	label           *display.Label
	inputAndActions *layout.Horizontal
	input           node.Valued
	actions         *layout.Box
	formError       *display.FormError

	submitIfDisabled bool
	hiddenValues     []node.Node
	hiddenValue      func() []any
}

// InitField builds the field structure around input. The field's own id is
// id + "Field"; the input keeps id and name.
func (f *BaseField) InitField(self node.Node, id, name string, input node.Valued) {
	f.Init(self, "div", id+"Field", name)
	f.input = input
	f.hiddenValue = func() []any {
		if list, ok := f.input.Value().([]any); ok {
			return list
		}
		return []any{f.input.Value()}
	}

	f.column = layout.NewVertical(id+"Container", "")
	f.inputContainer = layout.NewHorizontal("", "")
	f.label = display.NewLabel("", "")
	f.inputAndActions = layout.NewHorizontal("", "")
	f.actions = layout.NewBox("", "")
	errorContainer := layout.NewHorizontal("", "")
	f.formError = display.NewFormError(id, "")

	_ = f.Element.AddChild(f.column)
	_ = f.column.AddChild(f.inputContainer)
	_ = f.inputContainer.AddChild(f.label)
	_ = f.inputContainer.AddChild(f.inputAndActions)
	_ = f.inputAndActions.AddChild(input)
	_ = f.inputAndActions.AddChild(f.actions)
	_ = f.column.AddChild(errorContainer)
	_ = errorContainer.AddChild(f.formError)

	f.SetChildTarget(f.actions)
	f.SetAccessor("label", f.label)
	f.SetAccessor("userInput", input)
	f.SetAccessor("formError", f.formError)
	f.SetAccessor("fieldActions", f.actions)

	f.On(node.SignalBeforeToHTML, func(...any) {
		if f.formError.Name() == "" {
			f.formError.Remove()
		}
	})
	f.On(node.SignalBeforeToHTML, func(...any) { f.updateReadOnly() })
}

func (f *BaseField) updateReadOnly() {
	for _, h := range f.hiddenValues {
		h.Base().Remove()
	}
	f.hiddenValues = nil
	if f.Editable() || !f.submitIfDisabled {
		return
	}
	for _, v := range f.hiddenValue() {
		h := inputs.NewHiddenValue("", f.input.Base().Name())
		h.SetValue(v)
		_ = f.Element.AddChild(h)
		f.hiddenValues = append(f.hiddenValues, h)
	}
}

// UserInput returns the input element.
func (f *BaseField) UserInput() node.Valued { return f.input }

// Label returns the label element.
func (f *BaseField) Label() *display.Label { return f.label }

// FormError returns the error placeholder.
func (f *BaseField) FormError() *display.FormError { return f.formError }

// Actions returns the container that receives added children.
func (f *BaseField) Actions() *layout.Box { return f.actions }

// Value returns the input value.
func (f *BaseField) Value() any { return f.input.Value() }

// SetValue sets the input value.
func (f *BaseField) SetValue(value any) { f.input.SetValue(value) }

// Text returns the label text.
func (f *BaseField) Text() string { return f.label.Text() }

// SetText sets the label text.
func (f *BaseField) SetText(text string) { f.label.SetText(text) }

// SetSubmitIfDisabled makes a read only field still submit its value
// through hidden inputs.
func (f *BaseField) SetSubmitIfDisabled(submit bool) { f.submitIfDisabled = submit }

// ChangeID renames the input, the error placeholder and the field.
func (f *BaseField) ChangeID(id string) {
	f.input.Base().SetID(id)
	f.input.Base().SetName(id)
	f.formError.SetName(id)
	f.SetID(id + "Field")
}

// SetRequired marks the label with an asterisk and the input with RequiredField.
func (f *BaseField) SetRequired() {
	marker := display.NewLabel("", "")
	marker.AddClass("Required")
	marker.SetText("*")
	_ = f.label.AddChild(marker)
	f.input.Base().AddClass("RequiredField")
}

// SetApart pushes the input and the error to the right edge.
func (f *BaseField) SetApart() {
	f.inputAndActions.Parent().Base().SetStyle("float", "right")
	f.formError.Parent().Base().SetStyle("float", "right")
}

// Flip places the input before the label.
func (f *BaseField) Flip() {
	cell := f.inputAndActions.Parent()
	_ = f.inputContainer.MoveChild(cell, nil)
}

// Validators keys the field validator on the input instead of the field.
func (f *BaseField) Validators(useFullID bool) map[string]string {
	out := f.Element.Validators(useFullID)
	own, inputID := f.ID(), f.input.Base().ID()
	if useFullID {
		own, inputID = f.FullID(), f.input.Base().FullID()
	}
	delete(out, own)
	if v := f.Validator(); v != "" && f.Editable() && f.Shown() {
		out[inputID] = v
	}
	return out
}

func fieldOf(n node.Node) *BaseField {
	return n.(interface{ field() *BaseField }).field()
}

func (f *BaseField) field() *BaseField { return f }

func setStyle(accessor string) func(node.Node, any) error {
	return func(n node.Node, v any) error {
		return n.Base().Accessor(accessor).Base().SetStyleFromString(node.Stringify(v))
	}
}

// fieldProperties builds the property table of a field around its input's.
func fieldProperties(input *node.PropertySet) *node.PropertySet {
	return node.BaseProperties().
		Delegate("label", display.NewLabel("", "").Properties()).
		Text("text", func(n node.Node, v string) { fieldOf(n).SetText(v) }).
		Call("setApart", func(n node.Node) { fieldOf(n).SetApart() }).
		Method("value", nil, func(n node.Node, v any) error {
			n.(node.Valued).SetValue(v)
			return nil
		}).
		Method("labelStyle", nil, setStyle("label")).
		Method("inputStyle", nil, setStyle("userInput")).
		Call("required", func(n node.Node) { fieldOf(n).SetRequired() }).
		Text("key", func(n node.Node, v string) { fieldOf(n).input.Base().SetKey(v) }).
		Flag("submitIfDisabled", func(n node.Node, v bool) { fieldOf(n).SetSubmitIfDisabled(v) }).
		Call("flip", func(n node.Node) { fieldOf(n).Flip() }).
		Delegate("userInput", input)
}
