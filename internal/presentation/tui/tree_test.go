package tui

import (
	"testing"

	"github.com/BigRLab/thedom/pkg/node"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree(t *testing.T) {
	root := node.New("div", "root", "")
	require.NoError(t, root.AddChild(node.NewTextNode("hi")))

	t.Run("ascii matches plain dump", func(t *testing.T) {
		assert.Equal(t, node.Tree(root), Tree(root, termenv.Ascii))
	})

	t.Run("colors keep the text", func(t *testing.T) {
		out := Tree(root, termenv.TrueColor)
		assert.NotEqual(t, node.Tree(root), out)
		assert.Contains(t, out, "\x1b[")
		assert.Contains(t, out, "id='root'")
		assert.Contains(t, out, "'hi'")
	})
}
