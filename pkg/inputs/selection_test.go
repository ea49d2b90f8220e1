package inputs

import (
	"testing"

	"github.com/BigRLab/thedom/pkg/factory"
	"github.com/BigRLab/thedom/pkg/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	s := NewSelect("color", "")
	s.AddOptions("Red", "Blue")

	assert.Equal(t, "Red", s.Value(), "first option when nothing is selected")
	assert.Nil(t, s.Selected())
	assert.Equal(t, map[string]string{"Red": "Red", "Blue": "Blue"}, s.OptionTexts())

	changed := 0
	s.On(SignalSelectionChanged, func(...any) { changed++ })

	s.SetValue("Blue")
	assert.Equal(t, "Blue", s.Value())
	assert.Equal(t, 1, changed)
	assert.Equal(t,
		`<select name="color" id="color"><option value="Red">Red</option><option value="Blue" selected="selected">Blue</option></select>`,
		node.Render(s))
}

func TestSelect_Pairs(t *testing.T) {
	s := NewSelect("size", "")
	s.AddOptionPairs(OptionPair{Value: "s", Text: "Small"}, OptionPair{Value: "l", Text: "Large"})

	s.SetValue("Large")
	assert.Equal(t, "l", s.Value())

	s.SetEditable(false)
	assert.Contains(t, node.Render(s), `<select name="size" id="size" disabled="disabled">`)
}

func TestSelect_Binding(t *testing.T) {
	s := NewSelect("color", "")
	s.AddOptions("Red", "Blue")

	vars := map[string]any{"color": "Blue"}
	s.InsertVariables(vars)
	assert.Equal(t, "Blue", s.Value())
	assert.Empty(t, vars)

	assert.Equal(t, map[string]any{"color": "Blue"}, node.Export(s, true))
}

func TestOption_Properties(t *testing.T) {
	o := NewOption("", "")
	require.NoError(t, node.SetProperties(o, map[string]any{"value": "1", "text": "One", "selected": true}))
	assert.True(t, o.Selected())
	assert.Equal(t, "One", o.Text())
	assert.Equal(t, `<option value="1" selected="selected">One</option>`, node.Render(o))
}

func TestMultiSelect(t *testing.T) {
	m := NewMultiSelect("tags", "")
	m.AddOptions("a", "b", "c")

	vars := map[string]any{"tags": []any{"a", "c"}}
	m.InsertVariables(vars)

	assert.Equal(t, []any{"a", "c"}, m.Value())
	assert.Len(t, m.SelectedOptions(), 2)
	assert.Empty(t, vars)
	assert.Contains(t, node.Render(m), `<select name="tags" id="tags" multiple="multiple">`)

	m.SetValue("b")
	assert.Equal(t, []any{"b"}, m.Value())
}

func TestNewFactory(t *testing.T) {
	f := NewFactory()
	n, err := f.Build("textbox", "q", "")
	require.NoError(t, err)
	assert.IsType(t, &TextBox{}, n)

	_, err = f.Build("Table", "", "")
	assert.ErrorIs(t, err, factory.ErrUnknownProduct)
}
