package inputs

import (
	"fmt"
	"testing"

	"github.com/BigRLab/thedom/pkg/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextBox(t *testing.T) {
	tb := NewTextBox("name", "")
	assert.Equal(t, `<input name="name" id="name" type="text" />`, node.Render(tb))

	tb.SetValue("bob")
	assert.Equal(t, `<input name="name" id="name" value="bob" type="text" />`, node.Render(tb))

	require.NoError(t, node.SetProperties(tb, map[string]any{"password": "true", "maxlength": "8"}))
	assert.True(t, tb.IsPassword())
	assert.Equal(t, "8", tb.AttributeString("maxlength"))

	tb.SetEditable(false)
	assert.Equal(t, `<input name="name" id="name" value="bob" type="password" maxlength="8" readonly="readonly" />`, node.Render(tb))
}

func TestCheckBox(t *testing.T) {
	cb := NewCheckBox("agree", "")
	assert.False(t, cb.Checked())
	assert.Equal(t, `<input name="agree" id="agree" type="checkbox" />`, node.Render(cb))

	var changes []any
	cb.On(node.SignalValueChanged, func(args ...any) { changes = append(changes, args[0]) })

	cb.SetValue("True")
	assert.True(t, cb.Checked())
	assert.Equal(t, `<input name="agree" id="agree" type="checkbox" checked="on" />`, node.Render(cb))

	cb.SetValue(true)
	cb.SetValue("False")
	assert.False(t, cb.Checked())
	assert.Equal(t, []any{true, false}, changes)
}

func TestCheckBox_ValueAttribute(t *testing.T) {
	tests := []struct {
		submitted any
		want      bool
	}{
		{"0", true},
		{"no", true},
		{"off", true},
		{"on", true},
		{"True", true},
		{"False", false},
		{"", false},
		{nil, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.submitted), func(t *testing.T) {
			cb := NewCheckBox("agree", "")
			require.NoError(t, node.SetProperty(cb, "valueAttribute", "0"))

			cb.InsertVariables(map[string]any{"agree": tt.submitted})
			assert.Equal(t, tt.want, cb.Checked())
		})
	}
}

func TestCheckBox_Uneditable(t *testing.T) {
	parent := node.New("div", "", "")
	parent.SetEditable(false)
	cb := NewCheckBox("agree", "")
	require.NoError(t, parent.AddChild(cb))

	assert.Equal(t, `<input name="agree" id="agree" type="checkbox" disabled="true" readonly="readonly" />`, node.Render(cb))
}

func TestCheckBox_InsertVariables(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]any
		want bool
	}{
		{"submitted", map[string]any{"agree": "on"}, true},
		{"absent means unchecked", map[string]any{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := NewCheckBox("agree", "")
			cb.SetValue(true)
			cb.InsertVariables(tt.vars)
			assert.Equal(t, tt.want, cb.Checked())
			assert.Empty(t, tt.vars)
		})
	}
}

func TestRadio(t *testing.T) {
	form := node.New("form", "", "")
	red := NewRadio("red", "color")
	blue := NewRadio("blue", "color")
	require.NoError(t, form.AddChildren(red, blue))

	vars := map[string]any{"color": "blue"}
	form.InsertVariables(vars)

	assert.False(t, red.Checked())
	assert.True(t, blue.Checked())
	assert.Empty(t, vars)
	assert.Equal(t, `<input name="color" id="blue" value="blue" type="radio" checked="on" />`, node.Render(blue))
}

func TestIntegerTextBox(t *testing.T) {
	box := NewIntegerTextBox("age", "")
	assert.Equal(t, `<input name="age" id="age" value="0" type="text" size="4" />`, node.Render(box))

	require.NoError(t, node.SetProperties(box, map[string]any{"minimum": "5", "maximum": 10}))

	tests := []struct {
		in   any
		want any
	}{
		{"7", 7},
		{"42", 10},
		{1, 5},
		{"abc", 5},
		{nil, nil},
	}
	for _, tt := range tests {
		box.SetValue(tt.in)
		assert.Equal(t, tt.want, box.Value(), "input %v", tt.in)
	}
}

func TestFileUpload(t *testing.T) {
	f := NewFileUpload("doc", "")
	assert.Equal(t, `<input name="doc" id="doc" type="file" />`, node.Render(f))
}

func TestTextArea(t *testing.T) {
	ta := NewTextArea("notes", "")
	ta.SetValue("hello")
	assert.Equal(t, `<textarea name="notes" id="notes">hello</textarea>`, node.Render(ta))

	ta.SetEditable(false)
	assert.Equal(t, `<textarea name="notes" id="notes" readonly="readonly">hello</textarea>`, node.Render(ta))
}

func TestHiddenValue(t *testing.T) {
	h := NewHiddenValue("", "token")
	h.SetValue("abc")
	assert.False(t, h.Shown())
	assert.Equal(t, `<input name="token" value="abc" type="hidden" />`, node.Render(h))
}

func TestClientSideProperties(t *testing.T) {
	t.Run("enables", func(t *testing.T) {
		cb := NewCheckBox("agree", "")
		require.NoError(t, node.SetProperty(cb, "enables", "submit"))
		assert.Contains(t, node.Render(cb), `onclick="if(this.checked){JUGetElement(&quot;submit&quot;).disabled`)
	})

	t.Run("focus", func(t *testing.T) {
		container := &recordingContainer{}
		tb := NewTextBox("user", "")
		tb.SetScriptContainer(container)
		require.NoError(t, node.SetProperty(tb, "focus", true))

		require.Len(t, container.scripts, 1)
		assert.Equal(t, `JUGetElement("user").focus();`, container.scripts[0].Source())
	})
}

type recordingContainer struct {
	scripts []node.Script
}

func (r *recordingContainer) AddScript(s node.Script)    { r.scripts = append(r.scripts, s) }
func (r *recordingContainer) RemoveScript(s node.Script) {}
