package thedom

import (
	"fmt"

	"github.com/BigRLab/thedom/pkg/document"
	"github.com/BigRLab/thedom/pkg/node"
	"github.com/BigRLab/thedom/pkg/resources"
)

// Page is a built element tree with the accessors recorded while building
// it and the container collecting its scripts.
type Page struct {
	Root      node.Node
	Accessors map[string]node.Node
	Scripts   *resources.ScriptContainer
}

// NewPage wraps root. Scripts are collected at the end of the body for
// documents and after the root otherwise. It fails when a document body
// does not accept the script container.
func NewPage(root node.Node, accessors map[string]node.Node) (*Page, error) {
	p := &Page{
		Root:      root,
		Accessors: accessors,
		Scripts:   resources.NewScriptContainer("", ""),
	}
	if doc, ok := root.(*document.Document); ok {
		if err := doc.Body().AddChild(p.Scripts); err != nil {
			return nil, fmt.Errorf("failed to attach scripts to document body: %w", err)
		}
	}
	root.Base().SetScriptContainer(p.Scripts)
	return p, nil
}

// Accessor returns the element recorded under name.
func (p *Page) Accessor(name string) node.Node { return p.Accessors[name] }

// Bind inserts request values into the tree.
func (p *Page) Bind(vars map[string]any) { p.Root.InsertVariables(vars) }

// Export collects the values of the tree.
func (p *Page) Export(flat bool) map[string]any { return node.Export(p.Root, flat) }

// Validators collects the client side validators of the tree.
func (p *Page) Validators() map[string]string {
	if v, ok := p.Root.(interface{ Validators(bool) map[string]string }); ok {
		return v.Validators(true)
	}
	return p.Root.Base().Validators(true)
}

// HTML renders the tree and its scripts.
func (p *Page) HTML(formatted bool) string {
	html := p.Root.ToHTML(formatted)
	if _, ok := p.Root.(*document.Document); ok {
		return html
	}
	scripts := p.Scripts.ToHTML(formatted)
	switch {
	case scripts == "":
		return html
	case formatted:
		return html + "\n" + scripts
	default:
		return html + scripts
	}
}
