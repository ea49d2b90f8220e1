// Package layout arranges other elements: boxes, rows, columns, stacks
// and rules.
package layout

import (
	"errors"
	"fmt"
	"slices"

	"github.com/BigRLab/thedom/pkg/node"
	"github.com/BigRLab/thedom/pkg/schema"
)

// ErrInvalidContainerType is returned by SetContainerType for tags other than div and span.
var ErrInvalidContainerType = errors.New("container type must be div or span")

// ContainerTypes lists the tags a Box may render as.
var ContainerTypes = []string{"div", "span"}

// Box is a generic block (div) or inline (span) container.
type Box struct {
	node.Element
}

var boxProperties = node.BaseProperties().
	Method("type", nil, func(n node.Node, v any) error {
		return n.(interface{ SetContainerType(string) error }).SetContainerType(node.Stringify(v))
	})

// NewBox creates a div container.
func NewBox(id, name string) *Box {
	b := &Box{}
	b.Init(b, "div", id, name)
	b.UseProperties(boxProperties)
	return b
}

// ContainerType returns the rendered tag.
func (b *Box) ContainerType() string { return b.TagName() }

// SetContainerType switches between div and span. Other values are
// rejected and leave the type unchanged.
func (b *Box) SetContainerType(tag string) error {
	if !slices.Contains(ContainerTypes, tag) {
		return fmt.Errorf("%w: %q", ErrInvalidContainerType, tag)
	}
	b.SetTagName(tag)
	return nil
}

// NewFlow creates an inline container that lets children flow as text.
func NewFlow(id, name string) *Box {
	b := NewBox(id, name)
	b.SetKind("Flow")
	b.SetTagName("span")
	return b
}

// Horizontal lays children out side by side, each in its own cell.
type Horizontal struct {
	Box
}

// NewHorizontal creates a row container.
func NewHorizontal(id, name string) *Horizontal {
	h := &Horizontal{}
	h.Init(h, "div", id, name)
	h.UseProperties(boxProperties)
	h.AddClass("WHorizontal")
	return h
}

// AddChild appends child inside a new inline-block cell.
func (h *Horizontal) AddChild(child node.Node) error {
	cell := node.New("div", "", "")
	cell.AddClass("WCell")
	cell.SetStyle("display", "inline-block")
	cell.SetStyle("vertical-align", "top")
	if err := cell.AddChild(child); err != nil {
		return err
	}
	return h.Element.AddChild(cell)
}

// Vertical stacks children, each in its own block cell.
type Vertical struct {
	Box
}

// NewVertical creates a column container.
func NewVertical(id, name string) *Vertical {
	v := &Vertical{}
	v.InitVertical(v, id, name)
	return v
}

// InitVertical prepares an embedded column container.
func (v *Vertical) InitVertical(self node.Node, id, name string) {
	v.Init(self, "div", id, name)
	v.UseProperties(boxProperties)
	v.AddClass("WVertical")
}

// AddChild appends child inside a new block cell.
func (v *Vertical) AddChild(child node.Node) error {
	cell := node.New("div", "", "")
	cell.AddClass("WCell")
	if err := cell.AddChild(child); err != nil {
		return err
	}
	return v.Element.AddChild(cell)
}

// Stack shows one child at a time.
type Stack struct {
	Box
	current int
}

var stackProperties = boxProperties.Clone().
	Method("visible", schema.Int(), func(n node.Node, v any) error {
		return n.(*Stack).ShowIndex(v.(int))
	})

// NewStack creates an empty stack.
func NewStack(id, name string) *Stack {
	s := &Stack{}
	s.Init(s, "div", id, name)
	s.UseProperties(stackProperties)
	s.AddClass("WStack")
	return s
}

// AddChild appends child, hidden unless it is the first.
func (s *Stack) AddChild(child node.Node) error {
	if err := s.Element.AddChild(child); err != nil {
		return err
	}
	if s.Count() > 1 {
		child.Base().Hide()
	}
	return nil
}

// Visible returns the shown child, or nil when the stack is empty.
func (s *Stack) Visible() node.Node {
	return s.ChildAt(s.current)
}

// ShowIndex shows the child at index and hides the others.
func (s *Stack) ShowIndex(index int) error {
	if index < 0 || index >= s.Count() {
		return fmt.Errorf("stack index %d out of range [0,%d)", index, s.Count())
	}
	for i, c := range s.Children() {
		if i == index {
			c.Base().Show()
		} else {
			c.Base().Hide()
		}
	}
	s.current = index
	return nil
}

// ShowChild shows child and hides the others.
func (s *Stack) ShowChild(child node.Node) error {
	for i, c := range s.Children() {
		if c == child {
			return s.ShowIndex(i)
		}
	}
	return node.ErrNotChild
}

// Fields is a column of form fields whose labels share one width.
type Fields struct {
	Vertical
	labelWidth string
}

var fieldsProperties = boxProperties.Clone().
	Text("labelWidth", func(n node.Node, v string) { n.(*Fields).SetLabelWidth(v) })

// NewFields creates an empty field column.
func NewFields(id, name string) *Fields {
	f := &Fields{}
	f.InitVertical(f, id, name)
	f.UseProperties(fieldsProperties)
	f.AddClass("WFields")
	f.On(node.SignalBeforeToHTML, func(...any) { f.alignLabels() })
	return f
}

// SetLabelWidth sets the CSS width applied to every field label at render.
func (f *Fields) SetLabelWidth(width string) { f.labelWidth = width }

// LabelWidth returns the shared label width.
func (f *Fields) LabelWidth() string { return f.labelWidth }

func (f *Fields) alignLabels() {
	if f.labelWidth == "" {
		return
	}
	for _, n := range f.AllChildren() {
		if label := n.Base().Accessor("label"); label != nil {
			label.Base().SetStyle("width", f.labelWidth)
		}
	}
}

// NewLineBreak creates a <br />.
func NewLineBreak(id, name string) *node.Element {
	return rule("LineBreak", "br", id, name)
}

// NewHorizontalRule creates an <hr />.
func NewHorizontalRule(id, name string) *node.Element {
	return rule("HorizontalRule", "hr", id, name)
}

// NewVerticalRule creates a thin vertical separator.
func NewVerticalRule(id, name string) *node.Element {
	e := node.New("span", id, name)
	e.SetKind("VerticalRule")
	e.SetAllowsChildren(false)
	e.AddClass("WVerticalRule")
	e.SetStyle("border-left", "1px solid")
	e.SetStyle("display", "inline-block")
	return e
}

func rule(kind, tag, id, name string) *node.Element {
	e := node.New(tag, id, name)
	e.SetKind(kind)
	e.SetSelfCloses(true)
	e.SetAllowsChildren(false)
	return e
}
