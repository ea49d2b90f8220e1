// Package document models the page served to the client: the doctype, the
// html element and its head and body.
package document

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/BigRLab/thedom/pkg/node"
	"github.com/BigRLab/thedom/pkg/resources"
	"github.com/BigRLab/thedom/pkg/settings"
)

// Doctypes maps doctype names to their declarations.
var Doctypes = map[string]string{
	"html5": "<!DOCTYPE html>",
	"xhtml-transitional": `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" ` +
		`"http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">`,
	"xhtml-strict": `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" ` +
		`"http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">`,
	"xhtml-frameset": `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Frameset//EN" ` +
		`"http://www.w3.org/TR/xhtml1/DTD/xhtml1-frameset.dtd">`,
	"html4-transitional": `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.0 Transitional//EN" ` +
		`"http://www.w3.org/TR/REC-html40/loose.dtd">`,
	"html4-strict": `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01//EN" ` +
		`"http://www.w3.org/TR/html4/strict.dtd">`,
}

// DoctypeNames returns the known doctype names, sorted.
func DoctypeNames() []string {
	names := make([]string, 0, len(Doctypes))
	for n := range Doctypes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Tags placed in the head when added to a document.
var headTags = []string{"title", "base", "link", "meta", "script", "style"}

// MetaData is a meta tag. It is never displayed.
type MetaData struct {
	node.Element
}

var metaProperties = node.BaseProperties().
	Method("value", nil, func(n node.Node, v any) error {
		n.(interface{ SetValue(any) }).SetValue(v)
		return nil
	}).
	Text("name", func(n node.Node, v string) {
		n.(interface{ SetMetaName(string) }).SetMetaName(v)
	}).
	Attribute("http-equiv", nil)

// NewMetaData creates an empty meta tag.
func NewMetaData(id, name string) *MetaData {
	m := &MetaData{}
	m.initMeta(m, id, name)
	return m
}

func (m *MetaData) initMeta(self node.Node, id, name string) {
	m.Init(self, "meta", id, name)
	m.SetSelfCloses(true)
	m.SetAllowsChildren(false)
	m.UseProperties(metaProperties)
}

// Value returns the content attribute.
func (m *MetaData) Value() any {
	v, _ := m.Attribute("content")
	return v
}

// SetValue sets the content attribute.
func (m *MetaData) SetValue(value any) { m.SetAttribute("content", value) }

// MetaName returns the name the tag describes.
func (m *MetaData) MetaName() string { return m.Name() }

// SetMetaName sets the name the tag describes.
func (m *MetaData) SetMetaName(name string) { m.SetName(name) }

// Shown is always false.
func (m *MetaData) Shown() bool { return false }

// HTTPHeader is a meta tag carrying an http-equiv header.
type HTTPHeader struct {
	MetaData
}

// NewHTTPHeader creates an empty header tag.
func NewHTTPHeader(id, name string) *HTTPHeader {
	h := &HTTPHeader{}
	h.initMeta(h, id, name)
	return h
}

// MetaName returns the header name.
func (h *HTTPHeader) MetaName() string {
	v, _ := h.Attribute("http-equiv")
	return node.Stringify(v)
}

// SetMetaName sets the header name.
func (h *HTTPHeader) SetMetaName(name string) { h.SetAttribute("http-equiv", name) }

// Title is the document title.
type Title struct {
	node.Element
	text *node.TextNode
}

func newTitle() *Title {
	t := &Title{text: node.NewTextNode("")}
	t.Init(t, "title", "", "")
	_ = t.Element.AddChild(t.text)
	return t
}

// Text returns the title text.
func (t *Title) Text() string { return t.text.Text() }

// SetText replaces the title text.
func (t *Title) SetText(text string) { t.text.SetText(text) }

// Document is the html element of a page, rendered after its doctype.
// Added children go to the head when they are head content and to the body
// otherwise.
type Document struct {
	node.Element
	doctype     string
	head        *node.Element
	body        *node.Element
	title       *Title
	contentType *HTTPHeader
}

var documentProperties = node.BaseProperties().
	Method("doctype", nil, func(n node.Node, v any) error {
		return n.(*Document).SetDoctype(node.Stringify(v))
	}).
	Text("title", func(n node.Node, v string) { n.(*Document).title.SetText(v) }).
	Method("contentType", nil, func(n node.Node, v any) error {
		n.(*Document).contentType.SetValue(v)
		return nil
	}).
	Attribute("xmlns", nil)

// New creates a document using s for the default doctype.
func New(s settings.Settings, id, name string) *Document {
	d := &Document{}
	d.Init(d, "html", id, name)
	d.UseProperties(documentProperties)
	d.head = node.New("head", "", "")
	d.head.SetKind("Head")
	d.body = node.New("body", "", "")
	d.body.SetKind("Body")
	_ = d.Element.AddChild(d.head)
	_ = d.Element.AddChild(d.body)
	d.title = newTitle()
	_ = d.head.AddChild(d.title)
	d.contentType = d.AddHeader("Content-Type", "text/html; charset=UTF-8")
	if err := d.SetDoctype(s.Doctype); err != nil {
		d.doctype = Doctypes["html5"]
	}
	d.SetAccessor("head", d.head)
	d.SetAccessor("body", d.body)
	d.SetAccessor("title", d.title)
	return d
}

// NewDocument creates a document with the default settings.
func NewDocument(id, name string) *Document {
	return New(settings.Default(), id, name)
}

// Head returns the head element.
func (d *Document) Head() *node.Element { return d.head }

// Body returns the body element.
func (d *Document) Body() *node.Element { return d.body }

// Title returns the title element.
func (d *Document) Title() *Title { return d.title }

// ContentType returns the Content-Type header tag.
func (d *Document) ContentType() *HTTPHeader { return d.contentType }

// Doctype returns the doctype declaration.
func (d *Document) Doctype() string { return d.doctype }

// SetDoctype accepts a name from Doctypes or a literal declaration.
func (d *Document) SetDoctype(doctype string) error {
	if decl, ok := Doctypes[strings.ToLower(doctype)]; ok {
		d.doctype = decl
		return nil
	}
	if strings.HasPrefix(strings.ToUpper(doctype), "<!DOCTYPE") {
		d.doctype = doctype
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownDoctype, doctype)
}

// AddMetaData appends a meta tag to the head.
func (d *Document) AddMetaData(name string, value any) *MetaData {
	m := NewMetaData("", "")
	m.SetMetaName(name)
	m.SetValue(value)
	_ = d.head.AddChild(m)
	return m
}

// AddHeader appends an http-equiv header tag to the head.
func (d *Document) AddHeader(name string, value any) *HTTPHeader {
	h := NewHTTPHeader("", "")
	h.SetMetaName(name)
	h.SetValue(value)
	_ = d.head.AddChild(h)
	return h
}

// AddChild places head content in the head and everything else in the body.
func (d *Document) AddChild(child node.Node) error {
	if IsHeadContent(child) {
		return d.head.AddChild(child)
	}
	return d.body.AddChild(child)
}

// IsHeadContent reports whether n belongs in a document head.
func IsHeadContent(n node.Node) bool {
	if _, ok := n.(*resources.ResourceFile); ok {
		return true
	}
	return slices.Contains(headTags, n.Base().TagName())
}

// ToHTML renders the doctype followed by the html element.
func (d *Document) ToHTML(formatted bool) string {
	return d.doctype + "\n" + d.Element.ToHTML(formatted)
}
