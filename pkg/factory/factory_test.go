package factory

import (
	"testing"

	"github.com/BigRLab/thedom/pkg/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFactory(name string) *Factory {
	f := New(name)
	f.Add("Box", func(id, n string) node.Node { return node.New("div", id, n) })
	f.Add("Inline", func(id, n string) node.Node { return node.New("span", id, n) })
	return f
}

func TestFactory_Build(t *testing.T) {
	f := newTestFactory("Layout")

	tests := []struct {
		product string
		tag     string
		wantErr bool
	}{
		{"Box", "div", false},
		{"box", "div", false},
		{"Layout.Inline", "span", false},
		{"Missing", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.product, func(t *testing.T) {
			n, err := f.Build(tt.product, "x", "")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownProduct)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.tag, n.Base().TagName())
			assert.Equal(t, "x", n.Base().ID())
		})
	}

	assert.Equal(t, []string{"Box", "Inline"}, f.Products())
}

func TestComposite_Build(t *testing.T) {
	layout := newTestFactory("Layout")
	other := New("Other").Add("Box", func(id, n string) node.Node { return node.New("section", id, n) })
	c := NewComposite([]*Factory{layout, other})

	n, err := c.Build("Box", "", "")
	require.NoError(t, err)
	assert.Equal(t, "div", n.Base().TagName(), "first factory wins")

	n, err = c.Build("Other.Box", "", "")
	require.NoError(t, err)
	assert.Equal(t, "section", n.Base().TagName())

	_, err = c.Build("Nope.Box", "", "")
	assert.ErrorIs(t, err, ErrUnknownProduct)

	assert.Equal(t, []string{"Layout.Box", "Layout.Inline", "Other.Box"}, c.Products())
}

func TestProperties(t *testing.T) {
	ps, err := Properties(newTestFactory("Layout"), "Box")
	require.NoError(t, err)
	_, ok := ps.Get("style")
	assert.True(t, ok)
}
