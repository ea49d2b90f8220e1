package resources

import (
	"github.com/BigRLab/thedom/pkg/factory"
	"github.com/BigRLab/thedom/pkg/node"
	"github.com/BigRLab/thedom/pkg/settings"
)

// NewFactory returns a factory holding the resource elements. Resource files
// resolve paths against s.
func NewFactory(s settings.Settings, opts ...factory.Option) *factory.Factory {
	return factory.New("Resources", opts...).
		Add("ScriptContainer", func(id, name string) node.Node { return NewScriptContainer(id, name) }).
		Add("ResourceFile", func(id, name string) node.Node { return newResourceFile(s, id, name) })
}
