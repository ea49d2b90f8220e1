package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	e := New("div", "main", "")

	assert.Equal(t, "main", e.Name(), "name defaults to id")
	assert.Equal(t, "Element", e.Kind())
	assert.True(t, e.AllowsChildren())
	assert.True(t, e.Editable())
	assert.Nil(t, e.Classes(), "containers are allocated lazily")
	assert.Nil(t, e.Attributes())
	assert.Nil(t, e.Style())
	assert.Nil(t, e.Children())
}

func TestPrefix(t *testing.T) {
	root := New("form", "form", "")
	root.SetPrefix("p_")
	section := New("div", "section", "")
	field := New("input", "field", "field_name")
	require.NoError(t, root.AddChild(section))
	require.NoError(t, section.AddChild(field))

	assert.Equal(t, "p_field", field.FullID(), "prefix is inherited")
	assert.Equal(t, "p_field_name", field.FullName())

	section.SetPrefix(" ")
	assert.Equal(t, "field", field.FullID(), "a single space resets the prefix")

	section.ClearPrefix()
	assert.Equal(t, "p_field", field.FullID())

	anonymous := New("span", "", "")
	assert.Equal(t, "", anonymous.FullID())
	assert.Equal(t, "", anonymous.FullName())
}

func TestEditableInheritance(t *testing.T) {
	root := New("div", "", "")
	child := New("input", "c", "")
	require.NoError(t, root.AddChild(child))

	var changes []any
	_, err := root.Connect(SignalEditableChanged, func(args ...any) { changes = append(changes, args...) })
	require.NoError(t, err)

	root.SetEditable(false)
	assert.False(t, child.Editable())
	assert.Equal(t, []any{false}, changes)

	child.SetEditable(true)
	assert.True(t, child.Editable())
}

func TestHideShow(t *testing.T) {
	e := New("div", "", "")
	var events []string
	_, err := e.Connect(SignalHidden, func(...any) { events = append(events, "hidden") })
	require.NoError(t, err)
	_, err = e.Connect(SignalShown, func(...any) { events = append(events, "shown") })
	require.NoError(t, err)

	assert.True(t, e.Shown())
	e.Hide()
	e.Hide()
	assert.False(t, e.Shown())
	e.Show()

	assert.Equal(t, []string{"hidden", "shown"}, events)
	assert.Equal(t, `<div style="display:block;"></div>`, Render(e))
}

func TestIsBlockElement(t *testing.T) {
	assert.True(t, New("div", "", "").IsBlockElement())
	assert.False(t, New("span", "", "").IsBlockElement())

	span := New("span", "", "")
	span.AddClass("WBlock")
	assert.True(t, span.IsBlockElement())
}

func TestAccessors(t *testing.T) {
	e := New("div", "", "")
	label := New("label", "", "")
	e.SetAccessor("label", label)

	assert.Same(t, label, e.Accessor("label"))
	assert.Nil(t, e.Accessor("missing"))
}
