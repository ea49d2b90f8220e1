package factory

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/BigRLab/thedom/pkg/node"
	"github.com/goccy/go-json"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Template describes an element tree as data.
//
// Keys other than the named fields are treated as properties, so
// {create: Label, id: title, text: Hello} sets the label text.
type Template struct {
	Create        string         `mapstructure:"create"`
	ID            string         `mapstructure:"id"`
	Name          string         `mapstructure:"name"`
	Accessor      string         `mapstructure:"accessor"`
	Properties    map[string]any `mapstructure:"properties"`
	ChildElements []Template     `mapstructure:"childElements"`
	Extra         map[string]any `mapstructure:",remain"`
}

// AllProperties merges inline keys with the properties block, which wins.
func (t Template) AllProperties() map[string]any {
	out := make(map[string]any, len(t.Properties)+len(t.Extra))
	for k, v := range t.Extra {
		out[k] = v
	}
	for k, v := range t.Properties {
		out[k] = v
	}
	return out
}

// DecodeTemplate converts a generic document into a Template.
func DecodeTemplate(data map[string]any) (Template, error) {
	var tpl Template
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &tpl,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return tpl, err
	}
	if err := dec.Decode(data); err != nil {
		return tpl, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	if err := tpl.check(""); err != nil {
		return tpl, err
	}
	return tpl, nil
}

func (t Template) check(path string) error {
	if t.Create == "" {
		return fmt.Errorf("%w: %s: missing create", ErrInvalidTemplate, orRoot(path))
	}
	for i, c := range t.ChildElements {
		if err := c.check(fmt.Sprintf("%s/%d", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func orRoot(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

// ParseTemplate decodes a YAML or JSON template. The format is chosen from
// the file extension of source; anything but .json is read as YAML.
func ParseTemplate(source string, data []byte) (Template, error) {
	var raw map[string]any
	var err error
	if strings.EqualFold(filepath.Ext(source), ".json") {
		err = json.Unmarshal(data, &raw)
	} else {
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return Template{}, fmt.Errorf("%w: %s: %v", ErrInvalidTemplate, source, err)
	}
	return DecodeTemplate(raw)
}

// BuildFromTemplate builds the tree described by tpl. Elements with an
// accessor are recorded in accessors when it is not nil.
func (f *Factory) BuildFromTemplate(tpl Template, accessors map[string]node.Node) (node.Node, error) {
	return buildFromTemplate(f, f.logger, tpl, accessors)
}

// BuildFromTemplate builds the tree described by tpl.
func (c *Composite) BuildFromTemplate(tpl Template, accessors map[string]node.Node) (node.Node, error) {
	return buildFromTemplate(c, c.logger, tpl, accessors)
}

func buildFromTemplate(b Builder, logger *slog.Logger, tpl Template, accessors map[string]node.Node) (node.Node, error) {
	n, err := b.Build(tpl.Create, tpl.ID, tpl.Name)
	if err != nil {
		return nil, err
	}
	if tpl.Accessor != "" && accessors != nil {
		accessors[tpl.Accessor] = n
	}

	props := tpl.AllProperties()
	known := n.Properties()
	for name := range props {
		if _, ok := known.Get(name); !ok {
			logger.Warn("ignoring unknown template property", "product", tpl.Create, "property", name)
		}
	}
	if err := node.SetProperties(n, props); err != nil {
		return nil, fmt.Errorf("%s %q: %w", tpl.Create, tpl.ID, err)
	}

	for _, child := range tpl.ChildElements {
		c, err := buildFromTemplate(b, logger, child, accessors)
		if err != nil {
			return nil, err
		}
		if err := n.AddChild(c); err != nil {
			return nil, fmt.Errorf("%s %q: %w", tpl.Create, tpl.ID, err)
		}
	}
	return n, nil
}
