package graph

import (
	"fmt"
	"strings"

	"github.com/BigRLab/thedom/pkg/node"
)

// Overlay marks elements to highlight on the diagram.
type Overlay struct {
	// Selected holds full IDs drawn with the selected style.
	Selected []string
}

// GenerateMermaid produces a Mermaid flowchart of the element tree rooted at
// root. Shapes follow the element role:
// - Text: (Rounded)
// - Value holding input: [/Parallelogram/]
// - Not shown: {{Hexagon}}
// - Default: [Rectangle]
func GenerateMermaid(root node.Node, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	ids := make(map[string]string)
	count := 0
	var visit func(n node.Node) string
	visit = func(n node.Node) string {
		safeID := fmt.Sprintf("n%d", count)
		count++
		if full := n.Base().FullID(); full != "" {
			if _, seen := ids[full]; !seen {
				ids[full] = safeID
			}
		}

		opener, closer := "[", "]"
		switch n.(type) {
		case *node.TextNode:
			opener, closer = "(", ")"
		case node.Valued:
			opener, closer = "[/", "/]"
		}
		if s, ok := n.(interface{ Shown() bool }); ok && !s.Shown() {
			opener, closer = "{{", "}}"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, label(n), closer)

		for _, c := range n.Base().Children() {
			childID := visit(c)
			fmt.Fprintf(&sb, "    %s --> %s\n", safeID, childID)
		}
		return safeID
	}
	visit(root)

	if overlay != nil && len(overlay.Selected) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef selected fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		for _, id := range overlay.Selected {
			if safeID, ok := ids[id]; ok {
				fmt.Fprintf(&sb, "    class %s selected;\n", safeID)
			}
		}
	}

	return sb.String()
}

func label(n node.Node) string {
	var text string
	if t, ok := n.(*node.TextNode); ok {
		text = t.Text()
		if len(text) > 30 {
			text = text[:27] + "..."
		}
	} else {
		text = n.Base().Kind()
		if id := n.Base().FullID(); id != "" {
			text += " #" + id
		}
	}
	return strings.ReplaceAll(text, "\"", "'")
}
