package display

import (
	"fmt"

	"github.com/BigRLab/thedom/pkg/node"
	"github.com/BigRLab/thedom/pkg/schema"
	"github.com/BigRLab/thedom/pkg/settings"
)

// Image is an <img> whose value is its source.
type Image struct {
	node.ValueElement
}

var imageProperties = node.ValueProperties().
	Method("src", nil, func(n node.Node, v any) error {
		n.(node.Valued).SetValue(v)
		return nil
	})

// NewImage creates an image without a source.
func NewImage(id, name string) *Image {
	i := &Image{}
	i.initImage(i, id, name)
	return i
}

func (i *Image) initImage(self node.Valued, id, name string) {
	i.InitValue(self, "img", id, name)
	i.SetSelfCloses(true)
	i.SetAllowsChildren(false)
	i.RemoveAttribute("value")
	i.UseProperties(imageProperties)
}

// SetValue sets the location the image loads from.
func (i *Image) SetValue(value any) {
	i.ValueElement.SetValue(value)
	i.SetAttribute("src", value)
}

// SetImage points the image at a file under the configured images URL.
func (i *Image) SetImage(s settings.Settings, file string) {
	i.SetValue(s.Image(file))
}

// HoverImage swaps its source while hovered or pressed.
type HoverImage struct {
	Image
	onHover string
	onClick string
}

var hoverImageProperties = imageProperties.Clone().
	Text("imageOnHover", func(n node.Node, v string) { n.(*HoverImage).onHover = v }).
	Text("imageOnClick", func(n node.Node, v string) { n.(*HoverImage).onClick = v })

// NewHoverImage creates an image with hover and click sources.
func NewHoverImage(id, name string) *HoverImage {
	h := &HoverImage{}
	h.initImage(h, id, name)
	h.UseProperties(hoverImageProperties)
	h.On(node.SignalBeforeToHTML, func(...any) { h.addEvents() })
	return h
}

// SetImageOnHover sets the source shown under the pointer.
func (h *HoverImage) SetImageOnHover(src string) { h.onHover = src }

// SetImageOnClick sets the source shown while pressed.
func (h *HoverImage) SetImageOnClick(src string) { h.onClick = src }

func (h *HoverImage) addEvents() {
	src := node.Stringify(h.Value())
	if h.onHover != "" {
		h.RemoveJavascriptEvent("onmouseover", "")
		h.RemoveJavascriptEvent("onmouseout", "")
		h.AddJavascriptEvent("onmouseover", fmt.Sprintf("this.src = '%s';", h.onHover))
		h.AddJavascriptEvent("onmouseout", fmt.Sprintf("this.src = '%s';", src))
	}
	if h.onClick != "" {
		h.RemoveJavascriptEvent("onmousedown", "")
		h.RemoveJavascriptEvent("onmouseup", "")
		h.AddJavascriptEvent("onmousedown", fmt.Sprintf("this.src = '%s';", h.onClick))
		h.AddJavascriptEvent("onmouseup", fmt.Sprintf("this.src = '%s';", src))
	}
}

// List renders its children as <li> items of a <ul>, or an <ol> when ordered.
type List struct {
	node.Element
}

var listProperties = node.BaseProperties().
	Flag("ordered", func(n node.Node, v bool) { n.(*List).SetOrdered(v) }).
	Attribute("type", nil)

// NewList creates an unordered list.
func NewList(id, name string) *List {
	l := &List{}
	l.Init(l, "ul", id, name)
	l.UseProperties(listProperties)
	return l
}

// SetOrdered switches between <ol> and <ul>.
func (l *List) SetOrdered(ordered bool) {
	if ordered {
		l.SetTagName("ol")
	} else {
		l.SetTagName("ul")
	}
}

// Ordered reports whether the list is numbered.
func (l *List) Ordered() bool { return l.TagName() == "ol" }

// AddChild wraps child in a new item.
func (l *List) AddChild(child node.Node) error {
	item := NewItem("", "")
	if err := item.AddChild(child); err != nil {
		return err
	}
	return l.Element.AddChild(item)
}

// AddItem appends an item showing text.
func (l *List) AddItem(text string) *Item {
	item := NewItem("", "")
	item.SetText(text)
	_ = l.Element.AddChild(item)
	return item
}

// Item is one <li> of a List.
type Item struct {
	node.Element
	text *node.TextNode
}

// NewItem creates an empty list item.
func NewItem(id, name string) *Item {
	i := &Item{text: node.NewTextNode("")}
	i.Init(i, "li", id, name)
	_ = i.Element.AddChild(i.text)
	return i
}

// Text returns the item text.
func (i *Item) Text() string { return i.text.Text() }

// SetText replaces the item text.
func (i *Item) SetText(text string) { i.text.SetText(text) }

// HTML outputs the given markup unchanged.
type HTML struct {
	node.Element
	html string
}

var htmlProperties = node.BaseProperties().
	Text("html", func(n node.Node, v string) { n.(*HTML).SetHTML(v) })

// NewHTML creates a raw markup element. It has no identity of its own.
func NewHTML(_, _ string) *HTML {
	h := &HTML{}
	h.Init(h, "", "", "")
	h.UseProperties(htmlProperties)
	return h
}

// SetHTML replaces the markup.
func (h *HTML) SetHTML(html string) { h.html = html }

// ToHTML returns the markup.
func (h *HTML) ToHTML(bool) string { return h.html }

// Empty renders nothing; it is a placeholder.
type Empty struct {
	node.Element
}

// NewEmpty creates a placeholder.
func NewEmpty(_, _ string) *Empty {
	e := &Empty{}
	e.Init(e, "", "", "")
	return e
}

// ToHTML renders nothing.
func (e *Empty) ToHTML(bool) string { return "" }

// Shown is always false.
func (e *Empty) Shown() bool { return false }

// BlankRendered renders its children for their side effects and outputs nothing.
type BlankRendered struct {
	node.Element
}

// NewBlankRendered creates an invisible container.
func NewBlankRendered(id, name string) *BlankRendered {
	b := &BlankRendered{}
	b.Init(b, "", id, name)
	return b
}

// ToHTML renders the subtree and discards the result.
func (b *BlankRendered) ToHTML(bool) string {
	b.Element.ToHTML(false)
	return ""
}

// Shown is always false.
func (b *BlankRendered) Shown() bool { return false }

// Status indicator states.
const (
	StatusIncomplete = iota
	StatusPartial
	StatusComplete
)

var statusClasses = []string{"StatusIncomplete", "StatusPartial", "StatusComplete"}

// StatusIndicator shows progress from incomplete to complete as a CSS class.
type StatusIndicator struct {
	node.Element
	status int
}

var statusProperties = node.BaseProperties().
	Method("setStatus", schema.Int(), func(n node.Node, v any) error {
		return n.(*StatusIndicator).SetStatus(v.(int))
	})

// NewStatusIndicator creates an indicator in the incomplete state.
func NewStatusIndicator(id, name string) *StatusIndicator {
	s := &StatusIndicator{}
	s.Init(s, "div", id, name)
	s.UseProperties(statusProperties)
	_ = s.SetStatus(StatusIncomplete)
	s.SetStyle("height", "100%")
	s.AddClass("hidePrint")
	s.AddClass("WStatusIndicator")
	return s
}

// Status returns the current state.
func (s *StatusIndicator) Status() int { return s.status }

// SetStatus changes the state.
func (s *StatusIndicator) SetStatus(status int) error {
	if status < 0 || status >= len(statusClasses) {
		return fmt.Errorf("%w: %d", ErrInvalidStatus, status)
	}
	s.status = status
	s.ChooseClass(statusClasses, statusClasses[status])
	return nil
}

// CacheElement renders its subtree once and returns the cached markup afterwards.
type CacheElement struct {
	node.Element
	cached *string
}

// NewCacheElement creates a caching container.
func NewCacheElement(id, name string) *CacheElement {
	c := &CacheElement{}
	c.Init(c, "", id, name)
	return c
}

// ToHTML renders on first use.
func (c *CacheElement) ToHTML(formatted bool) string {
	if c.cached == nil {
		html := c.Element.ToHTML(formatted)
		c.cached = &html
	}
	return *c.cached
}

// Invalidate drops the cached markup.
func (c *CacheElement) Invalidate() { c.cached = nil }
