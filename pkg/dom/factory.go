package dom

import (
	"strings"

	"github.com/BigRLab/thedom/pkg/factory"
	"github.com/BigRLab/thedom/pkg/node"
)

// NewFactory returns a factory with one product per catalog entry.
func (c *Catalog) NewFactory(opts ...factory.Option) *factory.Factory {
	f := factory.New("DOM", opts...)
	for _, name := range c.names {
		e := c.entries[strings.ToLower(name)]
		f.Add(e.spec.Name, func(id, name string) node.Node { return c.build(e, id, name) })
	}
	return f
}
