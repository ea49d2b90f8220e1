package document

import (
	"github.com/BigRLab/thedom/pkg/factory"
	"github.com/BigRLab/thedom/pkg/node"
	"github.com/BigRLab/thedom/pkg/settings"
)

// NewFactory returns a factory holding the document elements. Documents take
// their default doctype from s.
func NewFactory(s settings.Settings, opts ...factory.Option) *factory.Factory {
	return factory.New("Document", opts...).
		Add("Document", func(id, name string) node.Node { return New(s, id, name) }).
		Add("MetaData", func(id, name string) node.Node { return NewMetaData(id, name) }).
		Add("HTTPHeader", func(id, name string) node.Node { return NewHTTPHeader(id, name) })
}
