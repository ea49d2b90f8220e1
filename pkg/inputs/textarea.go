package inputs

import "github.com/BigRLab/thedom/pkg/node"

// TextArea is a multi line text input. The value renders as its content.
type TextArea struct {
	node.ValueElement
}

var textAreaProperties = node.ValueProperties().
	Attribute("cols", nil).
	Attribute("rows", nil).
	Attribute("wrap", nil).
	Event("onkeydown")

// NewTextArea creates an empty <textarea>.
func NewTextArea(id, name string) *TextArea {
	t := &TextArea{}
	t.InitValue(t, "textarea", id, name)
	t.SetAllowsChildren(false)
	t.RemoveAttribute("value")
	t.UseProperties(textAreaProperties)
	t.On(node.SignalBeforeToHTML, func(...any) {
		if !t.Editable() {
			t.SetAttribute("readonly", "readonly")
		}
	})
	return t
}

// Content renders the value.
func (t *TextArea) Content(bool) string {
	return node.Stringify(t.Value())
}
