package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/BigRLab/thedom/pkg/node"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse reads a markup fragment and returns its top level elements.
// Known tags become catalog elements; others become generic tags.
// Comments and whitespace-only text are dropped.
func (c *Catalog) Parse(r io.Reader) ([]node.Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, context)
	if err != nil {
		return nil, fmt.Errorf("failed to parse markup: %w", err)
	}
	var out []node.Node
	for _, n := range nodes {
		converted, err := c.convert(n)
		if err != nil {
			return nil, err
		}
		if converted != nil {
			out = append(out, converted)
		}
	}
	return out, nil
}

// ParseString is Parse over a string.
func (c *Catalog) ParseString(markup string) ([]node.Node, error) {
	return c.Parse(strings.NewReader(markup))
}

// ParseDocument reads a whole document and returns its html element.
func (c *Catalog) ParseDocument(r io.Reader) (node.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			return c.convert(n)
		}
	}
	return nil, fmt.Errorf("failed to parse document: no root element")
}

func (c *Catalog) convert(n *html.Node) (node.Node, error) {
	switch n.Type {
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			return nil, nil
		}
		return node.NewTextNode(html.EscapeString(n.Data)), nil
	case html.ElementNode:
	default:
		return nil, nil
	}

	t := c.Generic(n.Data, "")
	t.SetName("")
	for _, a := range n.Attr {
		switch a.Key {
		case "id":
			t.SetID(a.Val)
		case "name":
			t.SetName(a.Val)
		case "class":
			t.AddClassesFromString(a.Val)
		case "style":
			if err := t.SetStyleFromString(a.Val); err != nil {
				return nil, fmt.Errorf("<%s>: %w", n.Data, err)
			}
		default:
			if a.Val == "" {
				t.SetAttribute(a.Key, node.Empty)
			} else {
				t.SetAttribute(a.Key, a.Val)
			}
		}
	}
	if !t.AllowsChildren() {
		return t, nil
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		converted, err := c.convert(child)
		if err != nil {
			return nil, err
		}
		if converted == nil {
			continue
		}
		if err := t.AddChild(converted); err != nil {
			return nil, err
		}
	}
	return t, nil
}
