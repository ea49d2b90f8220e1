package node

import (
	"fmt"
	"strings"
)

// Indentation is the unit prepended per nesting level in formatted output.
var Indentation = " "

// StartTag renders the opening tag with name, id, class, style and the
// remaining attributes in insertion order.
func (e *Element) StartTag() string {
	if e.tagName == "" {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(e.tagName)
	write := func(key, value string) {
		if value == "" {
			return
		}
		switch value {
		case Empty:
			sb.WriteString(" ")
			sb.WriteString(key)
			return
		case Blank:
			value = ""
		}
		sb.WriteString(" ")
		sb.WriteString(key)
		sb.WriteString(`="`)
		sb.WriteString(strings.ReplaceAll(value, `"`, "&quot;"))
		sb.WriteString(`"`)
	}
	write("name", e.FullName())
	write("id", e.FullID())
	write("class", strings.Join(e.classes, " "))
	write("style", e.StyleString())
	if e.attributes != nil {
		for _, p := range e.attributes.Pairs() {
			write(p.Key, Stringify(p.Value))
		}
	}
	if e.selfCloses {
		sb.WriteString(" /")
	}
	sb.WriteString(">")
	return sb.String()
}

// EndTag renders the closing tag, or "" for self closing and tagless elements.
func (e *Element) EndTag() string {
	if e.selfCloses || e.tagName == "" {
		return ""
	}
	return "</" + e.tagName + ">"
}

// Content renders the children. Formatted output puts each child on its own
// lines, indented one unit when the element has a tag.
func (e *Element) Content(formatted bool) string {
	if len(e.children) == 0 {
		return ""
	}
	parts := make([]string, len(e.children))
	for i, c := range e.children {
		parts[i] = c.ToHTML(formatted)
	}
	if !formatted {
		return strings.Join(parts, "")
	}
	indent := ""
	if e.tagName != "" {
		indent = Indentation
	}
	var lines []string
	for _, line := range strings.Split(strings.Join(parts, "\n"), "\n") {
		if line != "" {
			lines = append(lines, indent+line)
		}
	}
	return strings.Join(lines, "\n")
}

// ToHTML emits beforeToHtml and renders the element with its subtree.
func (e *Element) ToHTML(formatted bool) string {
	e.Emit(SignalBeforeToHTML)
	self := e.node()
	parts := []string{self.StartTag(), self.Content(formatted), self.EndTag()}
	if !formatted {
		return strings.Join(parts, "")
	}
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}

// String renders formatted markup.
func (e *Element) String() string {
	return e.node().ToHTML(true)
}

// Render returns the compact markup of n.
func Render(n Node) string {
	return n.ToHTML(false)
}

// RenderFormatted returns the indented markup of n.
func RenderFormatted(n Node) string {
	return n.ToHTML(true)
}

// Describe returns the one line summary used by Tree, such as Element(id='a', name='a').
func (e *Element) Describe() string {
	var attrs []string
	if e.id != "" {
		attrs = append(attrs, fmt.Sprintf("id='%s'", e.id))
	}
	if e.name != "" {
		attrs = append(attrs, fmt.Sprintf("name='%s'", e.name))
	}
	return e.kind + "(" + strings.Join(attrs, ", ") + ")"
}

// Tree returns an indented dump of the subtree.
func Tree(n Node) string {
	lines := []string{describe(n)}
	for _, c := range n.Base().children {
		for i, line := range strings.Split(Tree(c), "\n") {
			if i == 0 {
				lines = append(lines, "|---"+line)
			} else {
				lines = append(lines, "|  "+line)
			}
		}
	}
	return strings.Join(lines, "\n")
}

func describe(n Node) string {
	if d, ok := n.(interface{ Describe() string }); ok {
		return d.Describe()
	}
	return n.Base().Describe()
}
