package inputs

import (
	"github.com/BigRLab/thedom/pkg/clientside"
	"github.com/BigRLab/thedom/pkg/node"
	"github.com/BigRLab/thedom/pkg/schema"
)

// InputElement is the base <input> control. It renders readonly when the
// element is not editable.
type InputElement struct {
	node.ValueElement
}

// NewInputElement creates a bare <input>.
func NewInputElement(id, name string) *InputElement {
	i := &InputElement{}
	i.InitInput(i, id, name)
	return i
}

// InitInput prepares an embedded input element.
func (i *InputElement) InitInput(self node.Valued, id, name string) {
	i.InitValue(self, "input", id, name)
	i.SetSelfCloses(true)
	i.SetAllowsChildren(false)
	i.On(node.SignalBeforeToHTML, func(...any) {
		if !i.Editable() {
			i.SetAttribute("readonly", "readonly")
		}
	})
}

// CheckBox holds a boolean value and renders checked="on" when set.
type CheckBox struct {
	InputElement
}

var checkBoxProperties = node.ValueProperties().
	Text("valueAttribute", func(n node.Node, v string) { n.Base().SetAttribute("value", v) }).
	Text("enables", func(n node.Node, v string) { n.(interface{ Enables(string) }).Enables(v) })

// NewCheckBox creates an unchecked <input type="checkbox">.
func NewCheckBox(id, name string) *CheckBox {
	c := &CheckBox{}
	c.initCheckBox(c, id, name)
	return c
}

func (c *CheckBox) initCheckBox(self node.Valued, id, name string) {
	c.InitInput(self, id, name)
	c.StoreValue(false)
	c.SetAttribute("value", nil)
	c.SetAttribute("type", "checkbox")
	c.SetAttribute("disabled", node.AttrFunc(func() any {
		if c.Editable() {
			return nil
		}
		return true
	}))
	c.UseProperties(checkBoxProperties)
}

// Checked reports the current state.
func (c *CheckBox) Checked() bool {
	v, _ := c.Value().(bool)
	return v
}

// SetValue accepts booleans and their usual string forms ("True", "on",
// "0"...). Other non-empty values check the box.
func (c *CheckBox) SetValue(value any) {
	checked := asBool(value)
	switch {
	case checked && !c.Checked():
		c.ValueElement.SetValue(true)
		c.SetAttribute("checked", "on")
	case !checked && c.Checked():
		c.SetAttribute("checked", nil)
		c.ValueElement.SetValue(false)
	}
}

// InsertVariables clears an editable box first: browsers omit unchecked
// boxes from submitted forms.
func (c *CheckBox) InsertVariables(vars map[string]any) {
	if c.Editable() {
		c.SetValue(false)
	}
	c.InputElement.InsertVariables(vars)
}

// Enables keeps the element with the given full id disabled on the client
// while the box is unchecked.
func (c *CheckBox) Enables(id string) {
	c.AddJavascriptEvent("onclick", clientside.ShowIfChecked(id))
}

// asBool treats "False", the empty string, nil and zero values as unchecked.
// Every other string is a submitted value attribute and checks the box.
func asBool(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != "" && v != "False"
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case []any:
		return len(v) > 0
	default:
		return true
	}
}

// Radio is a check box grouped by name; it is selected when the request
// carries its id under the group name.
type Radio struct {
	CheckBox
}

// NewRadio creates a radio button. The id doubles as the submitted value.
func NewRadio(id, name string) *Radio {
	r := &Radio{}
	r.initCheckBox(r, id, name)
	r.SetAttribute("type", "radio")
	r.SetAttribute("value", node.AttrFunc(func() any { return r.ID() }))
	return r
}

// InsertVariables selects the radio when the group value equals its id.
func (r *Radio) InsertVariables(vars map[string]any) {
	selected, ok := vars[r.FullName()]
	if !ok || selected == nil {
		selected = vars[r.Name()]
	}
	if r.ID() != "" && node.Stringify(selected) == r.ID() {
		r.SetValue(true)
		r.RemoveFromRequest(vars)
		return
	}
	r.SetValue(false)
}

// TextBox is a single line text input.
type TextBox struct {
	InputElement
}

var textBoxProperties = node.ValueProperties().
	Attribute("size", nil).
	Attribute("maxlength", nil).
	Flag("password", func(n node.Node, v bool) { n.(interface{ SetPassword(bool) }).SetPassword(v) }).
	Attribute("autocomplete", nil).
	Event("onkeydown").
	Event("onkeyup").
	Call("focus", func(n node.Node) { n.(interface{ Focus() }).Focus() })

// NewTextBox creates an <input type="text">.
func NewTextBox(id, name string) *TextBox {
	t := &TextBox{}
	t.initTextBox(t, id, name)
	return t
}

func (t *TextBox) initTextBox(self node.Valued, id, name string) {
	t.InitInput(self, id, name)
	t.SetAttribute("type", "text")
	t.UseProperties(textBoxProperties)
}

// SetPassword switches between password and plain text entry.
func (t *TextBox) SetPassword(password bool) {
	if password {
		t.SetAttribute("type", "password")
	} else {
		t.SetAttribute("type", "text")
	}
}

// Focus gives the box keyboard focus once the page loads.
func (t *TextBox) Focus() {
	t.AddScript(node.Callback{Key: "focus", Fn: func() string {
		return clientside.Focus(t.FullID(), false)
	}})
}

// IsPassword reports whether typed text is masked.
func (t *TextBox) IsPassword() bool {
	return t.AttributeString("type") == "password"
}

// IntegerTextBox is a text box whose value is an int clamped to optional bounds.
type IntegerTextBox struct {
	TextBox
	minimum *int
	maximum *int
}

var integerTextBoxProperties = textBoxProperties.Clone().
	Method("maximum", schema.Int(), func(n node.Node, v any) error {
		n.(*IntegerTextBox).SetMaximum(v.(int))
		return nil
	}).
	Method("minimum", schema.Int(), func(n node.Node, v any) error {
		n.(*IntegerTextBox).SetMinimum(v.(int))
		return nil
	})

// NewIntegerTextBox creates an integer input starting at 0.
func NewIntegerTextBox(id, name string) *IntegerTextBox {
	t := &IntegerTextBox{}
	t.initTextBox(t, id, name)
	t.SetAttribute("size", "4")
	t.UseProperties(integerTextBoxProperties)
	t.SetValue(0)
	return t
}

// SetMinimum bounds future values from below.
func (t *IntegerTextBox) SetMinimum(min int) { t.minimum = &min }

// SetMaximum bounds future values from above.
func (t *IntegerTextBox) SetMaximum(max int) { t.maximum = &max }

// Minimum returns the lower bound, or nil when unbounded.
func (t *IntegerTextBox) Minimum() *int { return t.minimum }

// Maximum returns the upper bound, or nil when unbounded.
func (t *IntegerTextBox) Maximum() *int { return t.maximum }

// SetValue stores value as an int. Unparsable input becomes 0; nil clears.
func (t *IntegerTextBox) SetValue(value any) {
	if value == nil {
		t.ValueElement.SetValue(nil)
		return
	}
	n := 0
	if v, err := schema.Int().Coerce(value); err == nil {
		n = v.(int)
	}
	if t.maximum != nil && n > *t.maximum {
		n = *t.maximum
	}
	if t.minimum != nil && n < *t.minimum {
		n = *t.minimum
	}
	t.ValueElement.SetValue(n)
}

// IntValue returns the value, or 0 when cleared.
func (t *IntegerTextBox) IntValue() int {
	n, _ := t.Value().(int)
	return n
}

// FileUpload is an <input type="file">.
type FileUpload struct {
	InputElement
}

var fileUploadProperties = node.ValueProperties().
	Attribute("size", nil).
	Attribute("maxlength", nil)

// NewFileUpload creates a file input.
func NewFileUpload(id, name string) *FileUpload {
	f := &FileUpload{}
	f.InitInput(f, id, name)
	f.SetAttribute("type", "file")
	f.UseProperties(fileUploadProperties)
	return f
}
