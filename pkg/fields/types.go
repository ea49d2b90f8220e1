package fields

import (
	"fmt"

	"github.com/BigRLab/thedom/pkg/display"
	"github.com/BigRLab/thedom/pkg/inputs"
	"github.com/BigRLab/thedom/pkg/layout"
	"github.com/BigRLab/thedom/pkg/node"
)

var (
	textFieldProperties        = fieldProperties(inputs.NewTextBox("", "").Properties())
	textAreaFieldProperties    = fieldProperties(inputs.NewTextArea("", "").Properties())
	radioFieldProperties       = fieldProperties(inputs.NewRadio("", "").Properties())
	selectFieldProperties      = fieldProperties(inputs.NewSelect("", "").Properties())
	multiSelectFieldProperties = fieldProperties(inputs.NewMultiSelect("", "").Properties())
	integerFieldProperties     = fieldProperties(inputs.NewIntegerTextBox("", "").Properties())
	checkboxFieldProperties    = fieldProperties(inputs.NewCheckBox("", "").Properties()).
					Method("checked", nil, func(n node.Node, v any) error {
			n.(node.Valued).SetValue(v)
			return nil
		})
)

// TextField is a field around a TextBox.
type TextField struct {
	BaseField
	input *inputs.TextBox
}

// NewTextField creates a text field.
func NewTextField(id, name string) *TextField {
	f := &TextField{input: inputs.NewTextBox(id, name)}
	f.InitField(f, id, name, f.input)
	f.UseProperties(textFieldProperties)
	return f
}

// TextBox returns the input.
func (f *TextField) TextBox() *inputs.TextBox { return f.input }

// TextAreaField is a field around a TextArea.
type TextAreaField struct {
	BaseField
}

// NewTextAreaField creates a multi line text field.
func NewTextAreaField(id, name string) *TextAreaField {
	f := &TextAreaField{}
	f.InitField(f, id, name, inputs.NewTextArea(id, name))
	f.UseProperties(textAreaFieldProperties)
	return f
}

// RadioField is a field around a single Radio.
type RadioField struct {
	BaseField
	radio *inputs.Radio
}

// NewRadioField creates a radio field. A read only field submits the radio
// id only when it is selected.
func NewRadioField(id, name string) *RadioField {
	f := &RadioField{radio: inputs.NewRadio(id, name)}
	f.InitField(f, id, name, f.radio)
	f.UseProperties(radioFieldProperties)
	f.hiddenValue = func() []any {
		if f.radio.Checked() {
			return []any{f.radio.ID()}
		}
		return nil
	}
	return f
}

// Radio returns the input.
func (f *RadioField) Radio() *inputs.Radio { return f.radio }

// SelectJS returns script selecting the radio client side.
func (f *RadioField) SelectJS() string {
	return fmt.Sprintf("document.getElementById('%s').checked=true;", f.radio.FullID())
}

// SelectField is a field around a Select. Added options go to the select,
// other children to the field actions.
type SelectField struct {
	BaseField
	sel *inputs.Select
}

// NewSelectField creates a select field.
func NewSelectField(id, name string) *SelectField {
	f := &SelectField{sel: inputs.NewSelect(id, name)}
	f.InitField(f, id, name, f.sel)
	f.UseProperties(selectFieldProperties)
	return f
}

// AddChild routes options to the select.
func (f *SelectField) AddChild(child node.Node) error {
	if o, ok := child.(*inputs.Option); ok {
		return f.sel.AddChild(o)
	}
	return f.BaseField.AddChild(child)
}

// Select returns the input.
func (f *SelectField) Select() *inputs.Select { return f.sel }

// AddOption appends an option to the select.
func (f *SelectField) AddOption(text, value string) *inputs.Option { return f.sel.AddOption(text, value) }

// AddOptions appends options whose value equals their text.
func (f *SelectField) AddOptions(texts ...string) { f.sel.AddOptions(texts...) }

// Options returns the select's options.
func (f *SelectField) Options() []*inputs.Option { return f.sel.Options() }

// Selected returns the selected option, or nil.
func (f *SelectField) Selected() *inputs.Option { return f.sel.Selected() }

// MultiSelectField is a field around a MultiSelect.
type MultiSelectField struct {
	BaseField
	sel *inputs.MultiSelect
}

// NewMultiSelectField creates a multiple choice field.
func NewMultiSelectField(id, name string) *MultiSelectField {
	f := &MultiSelectField{sel: inputs.NewMultiSelect(id, name)}
	f.InitField(f, id, name, f.sel)
	f.UseProperties(multiSelectFieldProperties)
	return f
}

// AddChild routes options to the select.
func (f *MultiSelectField) AddChild(child node.Node) error {
	if o, ok := child.(*inputs.Option); ok {
		return f.sel.AddChild(o)
	}
	return f.BaseField.AddChild(child)
}

// MultiSelect returns the input.
func (f *MultiSelectField) MultiSelect() *inputs.MultiSelect { return f.sel }

// AddOptions appends options whose value equals their text.
func (f *MultiSelectField) AddOptions(texts ...string) { f.sel.AddOptions(texts...) }

// Selected returns the selected options.
func (f *MultiSelectField) Selected() []*inputs.Option { return f.sel.SelectedOptions() }

// CheckboxField is a check box followed by its label. Children go to a
// container shown only while the box is checked; their values and
// validators only count when it is.
type CheckboxField struct {
	BaseField
	box      *inputs.CheckBox
	children *layout.Box
}

// NewCheckboxField creates a check box field.
func NewCheckboxField(id, name string) *CheckboxField {
	f := &CheckboxField{box: inputs.NewCheckBox(id, name)}
	f.InitField(f, id, name, f.box)
	f.UseProperties(checkboxFieldProperties)
	f.Flip()

	f.children = layout.NewBox(id+"_childContainer", "")
	f.SetChildTarget(nil)
	_ = f.Element.AddChild(f.children)
	f.SetChildTarget(f.children)
	f.SetAccessor("childContainer", f.children)
	f.box.AddJavascriptEvent("onclick", "JUToggleElement('"+f.children.FullID()+"');")
	f.hiddenValue = func() []any {
		if f.box.Checked() {
			return []any{"on"}
		}
		return nil
	}
	f.On(node.SignalBeforeToHTML, func(...any) {
		if f.box.Checked() {
			f.children.SetStyle("display", "block")
		} else {
			f.children.SetStyle("display", "none")
		}
	})
	return f
}

// CheckBox returns the input.
func (f *CheckboxField) CheckBox() *inputs.CheckBox { return f.box }

// ChildContainer returns the container shown while checked.
func (f *CheckboxField) ChildContainer() *layout.Box { return f.children }

// ExportVariables only exports the children while the box is checked.
func (f *CheckboxField) ExportVariables(out map[string]any, flat bool) {
	if !f.box.Checked() {
		f.box.ExportVariables(out, flat)
		return
	}
	f.BaseField.ExportVariables(out, flat)
}

// Validators returns nothing while the box is unchecked.
func (f *CheckboxField) Validators(useFullID bool) map[string]string {
	if !f.box.Checked() {
		return map[string]string{}
	}
	return f.BaseField.Validators(useFullID)
}

// IntegerField is an integer box with increment and decrement controls.
type IntegerField struct {
	BaseField
	box    *inputs.IntegerTextBox
	toggle *layout.Vertical
	up     *display.Label
	down   *display.Label
}

// NewIntegerField creates an integer field validated as an int.
func NewIntegerField(id, name string) *IntegerField {
	f := &IntegerField{box: inputs.NewIntegerTextBox(id, name)}
	f.InitField(f, id, name, f.box)
	f.UseProperties(integerFieldProperties)
	f.SetValidator("int")

	f.toggle = layout.NewVertical("", "")
	f.toggle.SetStyle("font-size", "75%")
	f.toggle.AddClass("Clickable")
	f.up = display.NewLabel("", "")
	f.up.SetText("&#9650;")
	f.up.AddClass("hidePrint")
	f.down = display.NewLabel("", "")
	f.down.SetText("&#9660;")
	f.down.AddClass("hidePrint")
	_ = f.toggle.AddChildren(f.up, f.down)
	_ = f.AddChild(f.toggle)

	f.label.SetStyle("display", "block")
	f.On(node.SignalBeforeToHTML, func(...any) { f.addEvents() })
	return f
}

// IntegerTextBox returns the input.
func (f *IntegerField) IntegerTextBox() *inputs.IntegerTextBox { return f.box }

func (f *IntegerField) addEvents() {
	if !f.Editable() {
		f.toggle.Remove()
		return
	}
	bound := func(v *int) string {
		if v == nil {
			return "undefined"
		}
		return fmt.Sprint(*v)
	}
	f.up.RemoveJavascriptEvent("onclick", "")
	f.down.RemoveJavascriptEvent("onclick", "")
	f.up.AddJavascriptEvent("onclick", fmt.Sprintf("JUIncrement('%s', %s);", f.box.FullID(), bound(f.box.Maximum())))
	f.down.AddJavascriptEvent("onclick", fmt.Sprintf("JUDeincrement('%s', %s);", f.box.FullID(), bound(f.box.Minimum())))
}
