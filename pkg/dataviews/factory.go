package dataviews

import (
	"github.com/BigRLab/thedom/pkg/factory"
	"github.com/BigRLab/thedom/pkg/node"
)

// NewFactory returns a factory holding the data view elements.
func NewFactory(opts ...factory.Option) *factory.Factory {
	return factory.New("DataViews", opts...).
		Add("Table", func(id, name string) node.Node { return NewTable(id, name) }).
		Add("StoredValue", func(id, name string) node.Node { return NewStoredValue(id, name) })
}
