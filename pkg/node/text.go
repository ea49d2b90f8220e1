package node

// TextNode renders raw text and holds no children.
type TextNode struct {
	Element
	text string
}

// NewTextNode creates a text node.
func NewTextNode(text string) *TextNode {
	t := &TextNode{text: text}
	t.Init(t, "", "", "")
	t.SetAllowsChildren(false)
	return t
}

// Text returns the text.
func (t *TextNode) Text() string { return t.text }

// SetText replaces the text.
func (t *TextNode) SetText(text string) { t.text = text }

// Content returns the text unescaped.
func (t *TextNode) Content(bool) string { return t.text }

// Describe implements the tree dump summary.
func (t *TextNode) Describe() string { return "TextNode('" + t.text + "')" }

// Invalid stands in for an element that could not be created.
type Invalid struct {
	Element
}

// NewInvalid creates a placeholder rendering <h2>Invalid Element</h2>.
func NewInvalid() *Invalid {
	i := &Invalid{}
	i.Init(i, "h2", "", "")
	i.SetAllowsChildren(false)
	i.UseProperties(NewPropertySet())
	return i
}

// Content renders the placeholder text.
func (i *Invalid) Content(bool) string { return "Invalid Element" }
