package fields

import (
	"github.com/BigRLab/thedom/pkg/factory"
	"github.com/BigRLab/thedom/pkg/node"
)

// NewFactory returns a factory holding every field type.
func NewFactory(opts ...factory.Option) *factory.Factory {
	return factory.New("Fields", opts...).
		Add("TextField", func(id, name string) node.Node { return NewTextField(id, name) }).
		Add("TextAreaField", func(id, name string) node.Node { return NewTextAreaField(id, name) }).
		Add("RadioField", func(id, name string) node.Node { return NewRadioField(id, name) }).
		Add("SelectField", func(id, name string) node.Node { return NewSelectField(id, name) }).
		Add("MultiSelectField", func(id, name string) node.Node { return NewMultiSelectField(id, name) }).
		Add("CheckboxField", func(id, name string) node.Node { return NewCheckboxField(id, name) }).
		Add("IntegerField", func(id, name string) node.Node { return NewIntegerField(id, name) })
}
