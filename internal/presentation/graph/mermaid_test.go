package graph_test

import (
	"strings"
	"testing"

	"github.com/BigRLab/thedom/internal/presentation/graph"
	"github.com/BigRLab/thedom/pkg/inputs"
	"github.com/BigRLab/thedom/pkg/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree(t *testing.T) node.Node {
	t.Helper()
	root := node.New("div", "form", "")
	hidden := inputs.NewHiddenValue("token", "")
	require.NoError(t, root.AddChildren(
		node.NewTextNode(`Say "hi"`),
		inputs.NewTextBox("email", ""),
		hidden,
	))
	return root
}

func TestGenerateMermaid(t *testing.T) {
	out := graph.GenerateMermaid(sampleTree(t), nil)

	tests := []struct {
		name string
		want string
	}{
		{"header", "graph TD\n"},
		{"container", `n0["Element #form"]`},
		{"text", `n1("Say 'hi'")`},
		{"input", `n2[/"TextBox #email"/]`},
		{"hidden", `n3{{"HiddenValue #token"}}`},
		{"edge", "n0 --> n2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, out, tt.want)
		})
	}
	assert.NotContains(t, out, "classDef")
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	out := graph.GenerateMermaid(sampleTree(t), &graph.Overlay{Selected: []string{"email", "missing"}})

	assert.Contains(t, out, "classDef selected")
	assert.Contains(t, out, "class n2 selected;")
	assert.Equal(t, 1, strings.Count(out, "class n"))
}
