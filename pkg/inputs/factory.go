package inputs

import (
	"github.com/BigRLab/thedom/pkg/factory"
	"github.com/BigRLab/thedom/pkg/node"
)

// NewFactory returns a factory holding every input control.
func NewFactory(opts ...factory.Option) *factory.Factory {
	return factory.New("Inputs", opts...).
		Add("InputElement", func(id, name string) node.Node { return NewInputElement(id, name) }).
		Add("CheckBox", func(id, name string) node.Node { return NewCheckBox(id, name) }).
		Add("Radio", func(id, name string) node.Node { return NewRadio(id, name) }).
		Add("TextBox", func(id, name string) node.Node { return NewTextBox(id, name) }).
		Add("IntegerTextBox", func(id, name string) node.Node { return NewIntegerTextBox(id, name) }).
		Add("FileUpload", func(id, name string) node.Node { return NewFileUpload(id, name) }).
		Add("TextArea", func(id, name string) node.Node { return NewTextArea(id, name) }).
		Add("Option", func(id, name string) node.Node { return NewOption(id, name) }).
		Add("Select", func(id, name string) node.Node { return NewSelect(id, name) }).
		Add("MultiSelect", func(id, name string) node.Node { return NewMultiSelect(id, name) }).
		Add("HiddenValue", func(id, name string) node.Node { return NewHiddenValue(id, name) })
}
