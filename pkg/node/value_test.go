package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInput(id, name string) *ValueElement {
	v := NewValueElement("input", id, name)
	v.SetSelfCloses(true)
	return v
}

func TestValueElement_Render(t *testing.T) {
	v := newInput("x", "")
	assert.Equal(t, `<input name="x" id="x" />`, Render(v), "empty value is omitted")

	v.SetValue("hi")
	assert.Equal(t, `<input name="x" id="x" value="hi" />`, Render(v))
}

func TestValueElement_ValueChanged(t *testing.T) {
	v := newInput("x", "")
	var seen []any
	_, err := v.Connect(SignalValueChanged, func(args ...any) { seen = append(seen, args[0]) })
	require.NoError(t, err)

	v.SetValue("a")
	v.SetValue("a")
	v.SetValue("b")

	assert.Equal(t, []any{"a", "b"}, seen)
}

func TestValueElement_Properties(t *testing.T) {
	v := newInput("x", "")
	require.NoError(t, SetProperties(v, map[string]any{"value": "set", "onchange": "changed()"}))

	assert.Equal(t, "set", v.Value())
	assert.Equal(t, "changed()", v.JavascriptEvent("onchange"))

	plain := New("div", "", "")
	plain.UseProperties(ValueProperties())
	assert.Error(t, SetProperty(plain, "value", "x"))
}

func TestInsertVariables(t *testing.T) {
	form := New("form", "", "")
	first := newInput("first", "")
	tagA := newInput("", "tags")
	tagB := newInput("", "tags")
	untouched := newInput("other", "")
	require.NoError(t, form.AddChildren(first, tagA, tagB, untouched))

	vars := map[string]any{
		"first": "Ann",
		"tags":  []any{"x", "y"},
		"extra": "kept",
	}
	form.InsertVariables(vars)

	assert.Equal(t, "Ann", first.Value())
	assert.Equal(t, "x", tagA.Value())
	assert.Equal(t, "y", tagB.Value())
	assert.Equal(t, "", untouched.Value())
	assert.Equal(t, map[string]any{"extra": "kept"}, vars, "consumed entries are removed")
}

func TestInsertVariables_LookupOrder(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(*ValueElement)
		vars   map[string]any
		want   any
		remain map[string]any
	}{
		{
			name:   "key wins",
			setup:  func(v *ValueElement) { v.SetKey("person.first") },
			vars:   map[string]any{"person": map[string]any{"first": "Bob"}, "f": "Id"},
			want:   "Bob",
			remain: map[string]any{"person": map[string]any{"first": "Bob"}},
		},
		{
			name:   "full id before id",
			setup:  func(v *ValueElement) { v.SetPrefix("p_") },
			vars:   map[string]any{"p_f": "Full", "f": "Plain"},
			want:   "Full",
			remain: map[string]any{},
		},
		{
			name:   "name fallback",
			setup:  func(v *ValueElement) { v.SetID("") },
			vars:   map[string]any{"field": "ByName"},
			want:   "ByName",
			remain: map[string]any{},
		},
		{
			name:   "nothing found",
			setup:  func(v *ValueElement) {},
			vars:   map[string]any{"unrelated": 1},
			want:   "",
			remain: map[string]any{"unrelated": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newInput("f", "field")
			tt.setup(v)
			v.InsertVariables(tt.vars)

			assert.Equal(t, tt.want, v.Value())
			assert.Equal(t, tt.remain, tt.vars)
		})
	}
}

func TestExportVariables(t *testing.T) {
	form := New("form", "", "")
	first := newInput("first", "")
	first.SetKey("person.first")
	first.SetValue("Ann")
	tagA := newInput("", "tags")
	tagA.SetValue("x")
	tagB := newInput("", "tags")
	tagB.SetValue("y")
	tagC := newInput("", "tags")
	tagC.SetValue("z")
	require.NoError(t, form.AddChildren(first, tagA, tagB, tagC))

	assert.Equal(t, map[string]any{
		"first": "Ann",
		"tags":  []any{"x", "y", "z"},
	}, Export(form, true))

	assert.Equal(t, map[string]any{
		"person": map[string]any{"first": "Ann"},
	}, Export(form, false))
}

func TestExportVariables_NilValues(t *testing.T) {
	form := New("form", "", "")
	empty := newInput("", "tags")
	empty.SetValue(nil)
	filled := newInput("", "tags")
	filled.SetValue("y")
	require.NoError(t, form.AddChildren(empty, filled))

	assert.Equal(t, map[string]any{"tags": []any{nil, "y"}}, Export(form, true))
}

func TestClearFromRequest(t *testing.T) {
	form := New("form", "", "")
	form.SetPrefix("p_")
	field := newInput("a", "")
	require.NoError(t, form.AddChild(field))

	vars := map[string]any{"a": 1, "p_a": 2, "b": 3}
	form.ClearFromRequest(vars)

	assert.Equal(t, map[string]any{"b": 3}, vars)
}

func TestValidators(t *testing.T) {
	form := New("form", "", "")
	form.SetPrefix("p_")
	email := newInput("email", "")
	email.SetValidator("Email")
	phone := newInput("", "phone")
	phone.SetValidator("Phone")
	locked := newInput("locked", "")
	locked.SetValidator("Ignored")
	locked.SetEditable(false)
	require.NoError(t, form.AddChildren(email, phone, locked))

	assert.Equal(t, map[string]string{"p_email": "Email", "p_phone": "Phone"}, form.Validators(true))
	assert.Equal(t, map[string]string{"email": "Email", "phone": "Phone"}, form.Validators(false))
}
