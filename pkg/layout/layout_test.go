package layout

import (
	"testing"

	"github.com/BigRLab/thedom/pkg/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBox_ContainerType(t *testing.T) {
	b := NewBox("", "")
	assert.Equal(t, "div", b.ContainerType())

	require.NoError(t, b.SetContainerType("span"))
	assert.Equal(t, "span", b.ContainerType())

	assert.ErrorIs(t, b.SetContainerType("fdsd"), ErrInvalidContainerType)
	assert.Equal(t, "span", b.ContainerType())

	require.NoError(t, node.SetProperty(b, "type", "div"))
	assert.Equal(t, "<div></div>", node.Render(b))
}

func TestFlow(t *testing.T) {
	f := NewFlow("", "")
	require.NoError(t, f.AddChild(node.NewTextNode("a")))
	assert.Equal(t, "Flow", f.Kind())
	assert.Equal(t, "<span>a</span>", node.Render(f))
}

func TestHorizontal(t *testing.T) {
	h := NewHorizontal("", "")
	require.NoError(t, h.AddChildren(node.NewTextNode("a"), node.NewTextNode("b")))
	cell := `<div class="WCell" style="display:inline-block;vertical-align:top;">`
	assert.Equal(t, `<div class="WHorizontal">`+cell+`a</div>`+cell+`b</div></div>`, node.Render(h))
}

func TestVertical(t *testing.T) {
	v := NewVertical("", "")
	a := node.NewTextNode("a")
	require.NoError(t, v.AddChild(a))
	assert.Equal(t, `<div class="WVertical"><div class="WCell">a</div></div>`, node.Render(v))
	assert.Equal(t, "<div class=\"WVertical\">\n <div class=\"WCell\">\n  a\n </div>\n</div>", node.RenderFormatted(v))
	assert.Same(t, v.ChildAt(0), a.Parent())
}

func TestStack(t *testing.T) {
	s := NewStack("", "")
	a, b := node.New("p", "a", ""), node.New("p", "b", "")
	require.NoError(t, s.AddChildren(a, b))

	assert.True(t, a.Shown())
	assert.False(t, b.Shown())
	assert.Same(t, a, s.Visible())

	require.NoError(t, s.ShowChild(b))
	assert.False(t, a.Shown())
	assert.True(t, b.Shown())

	require.NoError(t, node.SetProperty(s, "visible", "0"))
	assert.Same(t, a, s.Visible())

	assert.Error(t, s.ShowIndex(5))
	assert.ErrorIs(t, s.ShowChild(node.New("p", "", "")), node.ErrNotChild)
}

func TestFields_LabelWidth(t *testing.T) {
	f := NewFields("", "")
	field := node.New("div", "", "")
	label := node.New("label", "", "")
	field.SetAccessor("label", label)
	require.NoError(t, field.AddChild(label))
	require.NoError(t, f.AddChild(field))

	require.NoError(t, node.SetProperty(f, "labelWidth", "10em"))
	node.Render(f)
	v, ok := label.StyleValue("width")
	assert.True(t, ok)
	assert.Equal(t, "10em", v)
}

func TestRules(t *testing.T) {
	assert.Equal(t, "<br />", node.Render(NewLineBreak("", "")))
	assert.Equal(t, "<hr />", node.Render(NewHorizontalRule("", "")))
	assert.Equal(t, `<span class="WVerticalRule" style="border-left:1px solid;display:inline-block;"></span>`, node.Render(NewVerticalRule("", "")))
}

func TestNewFactory(t *testing.T) {
	n, err := NewFactory().Build("lineBreak", "", "")
	require.NoError(t, err)
	assert.Equal(t, "LineBreak", n.Base().Kind())
}
