package dom

import (
	"errors"
	"testing"

	"github.com/BigRLab/thedom/pkg/node"
	"github.com/BigRLab/thedom/pkg/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Names(t *testing.T) {
	c := Default()
	names := c.Names()
	assert.Len(t, names, 107)
	assert.Contains(t, names, "Img")
	assert.IsIncreasing(t, names)
}

func TestCatalog_Lookup(t *testing.T) {
	c := Default()

	tests := []struct {
		lookup string
		name   string
		tag    string
	}{
		{"img", "Img", "img"},
		{"IMG", "Img", "img"},
		{"Abr", "Abr", "abbr"},
		{"abbr", "Abr", "abbr"},
	}
	for _, tt := range tests {
		t.Run(tt.lookup, func(t *testing.T) {
			spec, ok := c.Spec(tt.lookup)
			require.True(t, ok)
			assert.Equal(t, tt.name, spec.Name)
			assert.Equal(t, tt.tag, spec.Tag)
		})
	}

	_, ok := c.Spec("blink")
	assert.False(t, ok)
}

func TestCatalog_New(t *testing.T) {
	c := Default()

	img, err := c.New("img", "logo")
	require.NoError(t, err)
	assert.Equal(t, "Img", img.Kind())
	assert.True(t, img.SelfCloses())
	assert.False(t, img.AllowsChildren())
	assert.ErrorIs(t, img.AddChild(node.New("span", "", "")), node.ErrChildrenNotAllowed)

	_, err = c.New("blink", "")
	assert.True(t, errors.Is(err, ErrUnknownTag))
}

func TestCatalog_Properties(t *testing.T) {
	c := Default()

	img, err := c.New("Img", "")
	require.NoError(t, err)
	require.NoError(t, node.SetProperties(img, map[string]any{
		"alt":   "Logo",
		"width": "32",
		"ismap": "false",
	}))
	assert.Equal(t, `<img alt="Logo" width="32" />`, img.StartTag())

	err = node.SetProperty(img, "height", "tall")
	assert.Error(t, err)
}

func TestCatalog_StaticProperties(t *testing.T) {
	s := settings.Default()
	s.StaticURL = "/static/"
	c, err := NewCatalog(s)
	require.NoError(t, err)

	img, err := c.New("img", "")
	require.NoError(t, err)
	require.NoError(t, node.SetProperty(img, "src", "logo.png"))

	assert.Equal(t, "/static/logo.png", img.AttributeString("src"))
	assert.Equal(t, "logo.png", img.Static("src"))

	img.SetStatic("src", "other.png")
	assert.Equal(t, `<img src="/static/other.png" />`, node.Render(img))
}

func TestCatalog_Generic(t *testing.T) {
	c := Default()

	custom := c.Generic("x-widget", "w")
	assert.Equal(t, "x-widget", custom.Kind())
	assert.Equal(t, `<x-widget name="w" id="w"></x-widget>`, node.Render(custom))

	known := c.Generic("p", "")
	assert.Equal(t, "P", known.Kind())
}
