package dom

import (
	"strings"
	"testing"

	"github.com/BigRLab/thedom/pkg/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   []string
	}{
		{
			name:   "nested",
			markup: `<div id="box" class="a b"><p>hi</p></div>`,
			want:   []string{`<div id="box" class="a b"><p>hi</p></div>`},
		},
		{
			name:   "siblings and whitespace",
			markup: "<span>one</span>\n  <span>two</span>",
			want:   []string{`<span>one</span>`, `<span>two</span>`},
		},
		{
			name:   "style and bare attributes",
			markup: `<input name="q" style="color: red" disabled>`,
			want:   []string{`<input name="q" style="color:red;" disabled />`},
		},
		{
			name:   "escaped text",
			markup: `<p>a &amp; b</p>`,
			want:   []string{`<p>a &amp; b</p>`},
		},
		{
			name:   "comments dropped",
			markup: `<!-- note --><b>x</b>`,
			want:   []string{`<b>x</b>`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, err := Default().ParseString(tt.markup)
			require.NoError(t, err)
			var got []string
			for _, n := range nodes {
				got = append(got, node.Render(n))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Kinds(t *testing.T) {
	nodes, err := Default().ParseString(`<section><x-card>c</x-card></section>`)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	section := nodes[0].Base()
	assert.Equal(t, "Section", section.Kind())
	require.Equal(t, 1, section.Count())
	assert.Equal(t, "x-card", section.ChildAt(0).Base().Kind())
	assert.IsType(t, &node.TextNode{}, section.ChildAt(0).Base().ChildAt(0))
}

func TestParseDocument(t *testing.T) {
	root, err := Default().ParseDocument(strings.NewReader(`<html><head><title>T</title></head><body><p id="x">y</p></body></html>`))
	require.NoError(t, err)
	assert.Equal(t, "html", root.Base().TagName())
	assert.NotNil(t, root.Base().ChildWithID("x"))
}
