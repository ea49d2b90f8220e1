package display

import (
	"github.com/BigRLab/thedom/pkg/factory"
	"github.com/BigRLab/thedom/pkg/node"
)

// NewFactory returns a factory holding every display element.
func NewFactory(opts ...factory.Option) *factory.Factory {
	return factory.New("Display", opts...).
		Add("Image", func(id, name string) node.Node { return NewImage(id, name) }).
		Add("HoverImage", func(id, name string) node.Node { return NewHoverImage(id, name) }).
		Add("List", func(id, name string) node.Node { return NewList(id, name) }).
		Add("Label", func(id, name string) node.Node { return NewLabel(id, name) }).
		Add("Paragraph", func(id, name string) node.Node { return NewParagraph(id, name) }).
		Add("Subscript", func(id, name string) node.Node { return NewSubscript(id, name) }).
		Add("Superscript", func(id, name string) node.Node { return NewSuperscript(id, name) }).
		Add("PreformattedText", func(id, name string) node.Node { return NewPreformattedText(id, name) }).
		Add("HeaderLabel", func(id, name string) node.Node { return NewHeaderLabel(id, name) }).
		Add("FreeText", func(id, name string) node.Node { return NewFreeText(id, name) }).
		Add("LabeledData", func(id, name string) node.Node { return NewLabeledData(id, name) }).
		Add("Error", func(id, name string) node.Node { return NewError(id, name) }).
		Add("FormError", func(id, name string) node.Node { return NewFormError(id, name) }).
		Add("BlankRendered", func(id, name string) node.Node { return NewBlankRendered(id, name) }).
		Add("Empty", func(id, name string) node.Node { return NewEmpty(id, name) }).
		Add("HTML", func(id, name string) node.Node { return NewHTML(id, name) }).
		Add("StatusIndicator", func(id, name string) node.Node { return NewStatusIndicator(id, name) }).
		Add("CacheElement", func(id, name string) node.Node { return NewCacheElement(id, name) })
}
