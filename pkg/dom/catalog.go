// Package dom exposes the HTML5 tag catalog as elements.
//
// Every tag is described in the embedded tags.yaml: its element name, the
// rendered tag, a short description, whether it self closes or holds
// children, and the attributes it accepts as properties.
package dom

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BigRLab/thedom/pkg/node"
	"github.com/BigRLab/thedom/pkg/schema"
	"github.com/BigRLab/thedom/pkg/settings"
	"gopkg.in/yaml.v3"
)

//go:embed tags.yaml
var tagsYAML []byte

// ErrUnknownTag is returned when a name is not in the catalog.
var ErrUnknownTag = errors.New("unknown tag")

// PropertySpec describes one attribute a tag accepts.
type PropertySpec struct {
	Name string `yaml:"name"`
	// Type is a schema type name; empty means the value is kept as is.
	Type string `yaml:"type"`
	// Static attributes are prefixed with the static URL.
	Static bool `yaml:"static"`
}

// TagSpec describes one catalog entry.
type TagSpec struct {
	Name       string         `yaml:"name"`
	Tag        string         `yaml:"tag"`
	Doc        string         `yaml:"doc"`
	SelfCloses bool           `yaml:"selfCloses"`
	NoChildren bool           `yaml:"noChildren"`
	Properties []PropertySpec `yaml:"properties"`
}

type entry struct {
	spec  TagSpec
	props *node.PropertySet
}

// Catalog builds tag elements configured with a Settings value.
type Catalog struct {
	settings settings.Settings
	entries  map[string]*entry
	byTag    map[string]*entry
	names    []string
}

// NewCatalog parses the embedded catalog.
func NewCatalog(s settings.Settings) (*Catalog, error) {
	var specs []TagSpec
	if err := yaml.Unmarshal(tagsYAML, &specs); err != nil {
		return nil, fmt.Errorf("failed to parse tag catalog: %w", err)
	}
	c := &Catalog{
		settings: s,
		entries:  make(map[string]*entry, len(specs)),
		byTag:    make(map[string]*entry, len(specs)),
	}
	for _, spec := range specs {
		props, err := c.properties(spec)
		if err != nil {
			return nil, fmt.Errorf("tag %s: %w", spec.Name, err)
		}
		e := &entry{spec: spec, props: props}
		c.entries[strings.ToLower(spec.Name)] = e
		if _, ok := c.byTag[spec.Tag]; !ok {
			c.byTag[spec.Tag] = e
		}
		c.names = append(c.names, spec.Name)
	}
	sort.Strings(c.names)
	return c, nil
}

var defaultCatalog *Catalog

// Default returns the catalog built with default settings.
func Default() *Catalog {
	if defaultCatalog == nil {
		c, err := NewCatalog(settings.Default())
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	}
	return defaultCatalog
}

func (c *Catalog) properties(spec TagSpec) (*node.PropertySet, error) {
	ps := node.BaseProperties()
	for _, p := range spec.Properties {
		t, err := schema.ParseType(p.Type)
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", p.Name, err)
		}
		if p.Static {
			attr := p.Name
			ps.Text(p.Name, func(n node.Node, v string) {
				n.Base().SetAttribute(attr, c.settings.Static(v))
			})
			continue
		}
		if p.Type == "" {
			t = nil
		}
		ps.Attribute(p.Name, t)
	}
	return ps, nil
}

// Settings returns the settings the catalog was built with.
func (c *Catalog) Settings() settings.Settings { return c.settings }

// Names returns every element name, sorted.
func (c *Catalog) Names() []string { return c.names }

// Spec returns the catalog entry for an element name, case-insensitively.
func (c *Catalog) Spec(name string) (TagSpec, bool) {
	e := c.lookup(name)
	if e == nil {
		return TagSpec{}, false
	}
	return e.spec, true
}

func (c *Catalog) lookup(name string) *entry {
	if e, ok := c.entries[strings.ToLower(name)]; ok {
		return e
	}
	return c.byTag[strings.ToLower(name)]
}

// New creates the element registered under name (or rendered as tag name).
func (c *Catalog) New(name, id string) (*Tag, error) {
	e := c.lookup(name)
	if e == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTag, name)
	}
	return c.build(e, id, ""), nil
}

// Generic creates an element for any tag, using the catalog entry when one exists.
func (c *Catalog) Generic(tag, id string) *Tag {
	if e := c.lookup(tag); e != nil {
		return c.build(e, id, "")
	}
	return c.build(&entry{spec: TagSpec{Name: tag, Tag: tag}, props: node.BaseProperties()}, id, "")
}

func (c *Catalog) build(e *entry, id, name string) *Tag {
	t := &Tag{spec: e.spec, catalog: c}
	t.Init(t, e.spec.Tag, id, name)
	t.SetKind(e.spec.Name)
	t.SetSelfCloses(e.spec.SelfCloses)
	t.SetAllowsChildren(!e.spec.NoChildren)
	t.UseProperties(e.props)
	return t
}

// Tag is a catalog element.
type Tag struct {
	node.Element
	spec    TagSpec
	catalog *Catalog
}

// Spec returns the catalog entry the element was built from.
func (t *Tag) Spec() TagSpec { return t.spec }

// Static returns a static attribute without the static URL prefix.
func (t *Tag) Static(attr string) string {
	return t.catalog.settings.Unstatic(t.AttributeString(attr))
}

// SetStatic stores a static attribute with the static URL prefix.
func (t *Tag) SetStatic(attr, path string) {
	t.SetAttribute(attr, t.catalog.settings.Static(path))
}
