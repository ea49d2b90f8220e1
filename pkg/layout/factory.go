package layout

import (
	"github.com/BigRLab/thedom/pkg/factory"
	"github.com/BigRLab/thedom/pkg/node"
)

// NewFactory returns a factory holding every layout element.
func NewFactory(opts ...factory.Option) *factory.Factory {
	return factory.New("Layout", opts...).
		Add("Box", func(id, name string) node.Node { return NewBox(id, name) }).
		Add("Flow", func(id, name string) node.Node { return NewFlow(id, name) }).
		Add("Horizontal", func(id, name string) node.Node { return NewHorizontal(id, name) }).
		Add("Vertical", func(id, name string) node.Node { return NewVertical(id, name) }).
		Add("Stack", func(id, name string) node.Node { return NewStack(id, name) }).
		Add("Fields", func(id, name string) node.Node { return NewFields(id, name) }).
		Add("LineBreak", func(id, name string) node.Node { return NewLineBreak(id, name) }).
		Add("HorizontalRule", func(id, name string) node.Node { return NewHorizontalRule(id, name) }).
		Add("VerticalRule", func(id, name string) node.Node { return NewVerticalRule(id, name) })
}
