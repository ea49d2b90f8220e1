// Package display holds elements that only present information: labels,
// headers, images, lists and raw markup.
package display

import (
	"fmt"
	"strings"

	"github.com/BigRLab/thedom/pkg/node"
	"github.com/BigRLab/thedom/pkg/schema"
)

// SignalTextChanged is emitted by labels when their text changes.
const SignalTextChanged = "textChanged"

// Texter is implemented by elements displaying a single text.
type Texter interface {
	node.Node
	Text() string
	SetText(text string)
}

// Label displays a single string of text.
type Label struct {
	node.Element
	text     *node.TextNode
	wrappers []string
}

var labelProperties = node.BaseProperties().
	Text("text", func(n node.Node, v string) { n.(Texter).SetText(v) }).
	Call("useNBSP", func(n node.Node) { n.(Texter).SetText("&nbsp;") }).
	Call("strong", func(n node.Node) { n.(interface{ MakeStrong() }).MakeStrong() }).
	Call("emphasis", func(n node.Node) { n.(interface{ AddEmphasis() }).AddEmphasis() })

// NewLabel creates a <span> label.
func NewLabel(id, name string) *Label {
	l := &Label{}
	l.InitLabel(l, "span", id, name)
	return l
}

// InitLabel prepares an embedded label rendered with tag.
func (l *Label) InitLabel(self node.Node, tag, id, name string) {
	l.Init(self, tag, id, name)
	l.Declare(SignalTextChanged)
	l.UseProperties(labelProperties)
	l.text = node.NewTextNode("")
	_ = l.Element.AddChild(l.text)
}

// Text returns the displayed text.
func (l *Label) Text() string { return l.text.Text() }

// SetText replaces the displayed text and emits textChanged.
func (l *Label) SetText(text string) {
	if text == l.text.Text() {
		return
	}
	l.text.SetText(text)
	l.Emit(SignalTextChanged, text)
}

// UseNBSP replaces the text with a non breaking space.
func (l *Label) UseNBSP() { l.SetText("&nbsp;") }

// AppendText adds text on a new line.
func (l *Label) AppendText(text string) {
	if prev := l.Text(); prev != "" {
		text = prev + "<br />" + text
	}
	l.SetText(text)
}

// MakeStrong renders the label inside <strong>.
func (l *Label) MakeStrong() { l.wrappers = append(l.wrappers, "strong") }

// AddEmphasis renders the label inside <em>.
func (l *Label) AddEmphasis() { l.wrappers = append(l.wrappers, "em") }

// ToHTML renders the label inside any wrapper tags added by MakeStrong or AddEmphasis.
func (l *Label) ToHTML(formatted bool) string {
	return wrap(l.Element.ToHTML(formatted), l.wrappers, formatted)
}

func wrap(html string, wrappers []string, formatted bool) string {
	for _, tag := range wrappers {
		if formatted {
			html = "<" + tag + ">\n" + indent(html) + "\n</" + tag + ">"
		} else {
			html = "<" + tag + ">" + html + "</" + tag + ">"
		}
	}
	return html
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = node.Indentation + line
	}
	return strings.Join(lines, "\n")
}

// NewParagraph creates a <p> label.
func NewParagraph(id, name string) *Label {
	l := &Label{}
	l.InitLabel(l, "p", id, name)
	l.SetKind("Paragraph")
	return l
}

// NewSubscript creates a <sub> label.
func NewSubscript(id, name string) *Label {
	l := &Label{}
	l.InitLabel(l, "sub", id, name)
	l.SetKind("Subscript")
	return l
}

// NewSuperscript creates a <sup> label.
func NewSuperscript(id, name string) *Label {
	l := &Label{}
	l.InitLabel(l, "sup", id, name)
	l.SetKind("Superscript")
	return l
}

// NewPreformattedText creates a <pre> label.
func NewPreformattedText(id, name string) *Label {
	l := &Label{}
	l.InitLabel(l, "pre", id, name)
	l.SetKind("PreformattedText")
	return l
}

// NewFreeText creates a label without a surrounding tag.
func NewFreeText(id, name string) *Label {
	l := &Label{}
	l.InitLabel(l, "", id, name)
	l.SetKind("FreeText")
	return l
}

// NewError creates a <div> label for error messages.
func NewError(id, name string) *Label {
	l := &Label{}
	l.InitLabel(l, "div", id, name)
	l.SetKind("Error")
	return l
}

// HeaderLabel is a heading; its level picks h1 through h6.
type HeaderLabel struct {
	Label
	level int
}

var headerProperties = labelProperties.Clone().
	Method("level", schema.Int(), func(n node.Node, v any) error {
		return n.(*HeaderLabel).SetLevel(v.(int))
	})

// NewHeaderLabel creates an <h2> heading.
func NewHeaderLabel(id, name string) *HeaderLabel {
	h := &HeaderLabel{}
	h.InitLabel(h, "h2", id, name)
	h.UseProperties(headerProperties)
	h.level = 2
	return h
}

// Level returns the heading level.
func (h *HeaderLabel) Level() int { return h.level }

// SetLevel changes the heading level.
func (h *HeaderLabel) SetLevel(level int) error {
	if level < 1 || level > 6 {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	h.level = level
	h.SetTagName(fmt.Sprintf("h%d", level))
	return nil
}

// LabeledData shows a caption followed by a data label.
type LabeledData struct {
	Label
	data *Label
}

var labeledDataProperties = node.BaseProperties().
	Text("label", func(n node.Node, v string) { n.(*LabeledData).SetText(v) }).
	Text("data", func(n node.Node, v string) { n.(*LabeledData).SetData(v) })

// NewLabeledData creates an empty caption/data pair.
func NewLabeledData(id, name string) *LabeledData {
	d := &LabeledData{}
	d.InitLabel(d, "span", id, name)
	d.UseProperties(labeledDataProperties)
	d.SetStyle("vertical-align", "middle")
	d.AddClass("WLabeledData")
	d.data = NewLabel("", "")
	d.data.AddClass("WDataLabeled")
	_ = d.Element.AddChild(d.data)
	return d
}

// Data returns the displayed data.
func (d *LabeledData) Data() string { return d.data.Text() }

// SetData replaces the displayed data.
func (d *LabeledData) SetData(data string) { d.data.SetText(data) }

// FormError marks where a form processor places a field error. It renders
// as an empty <form:error/> until SetError is called.
type FormError struct {
	Label
}

// NewFormError creates a placeholder. A lone id is used as the name.
func NewFormError(id, name string) *FormError {
	if id != "" && name == "" {
		id, name = "", id
	}
	f := &FormError{}
	f.InitLabel(f, "form:error", id, name)
	f.SetSelfCloses(true)
	return f
}

// SetError turns the placeholder into a visible error message.
func (f *FormError) SetError(text string) {
	f.SetTagName("span")
	f.AddClass("error-message")
	f.SetSelfCloses(false)
	f.SetText(text)
}

// Shown is always false: form errors are replaced, never displayed.
func (f *FormError) Shown() bool { return false }
