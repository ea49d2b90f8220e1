package tui

import (
	"strings"

	"github.com/BigRLab/thedom/pkg/node"
	"github.com/muesli/termenv"
)

// Tree renders the element tree of root like node.Tree, coloring element
// kinds and text with profile. termenv.Ascii disables colors.
func Tree(root node.Node, profile termenv.Profile) string {
	kind := func(s string) string {
		return termenv.String(s).Foreground(profile.Color("#818cf8")).Bold().String()
	}
	text := func(s string) string {
		return termenv.String(s).Foreground(profile.Color("#a3a3a3")).String()
	}
	guide := func(s string) string {
		return termenv.String(s).Faint().String()
	}
	if profile == termenv.Ascii {
		kind, text, guide = plain, plain, plain
	}

	lines := strings.Split(node.Tree(root), "\n")
	for i, line := range lines {
		prefixEnd := 0
		for prefixEnd < len(line) && strings.ContainsRune("|- ", rune(line[prefixEnd])) {
			prefixEnd++
		}
		prefix, rest := line[:prefixEnd], line[prefixEnd:]
		head, tail, found := strings.Cut(rest, "(")
		styled := guide(prefix)
		switch {
		case head == "TextNode" && found:
			styled += kind(head) + text("("+tail)
		case found:
			styled += kind(head) + "(" + tail
		default:
			styled += kind(rest)
		}
		lines[i] = styled
	}
	return strings.Join(lines, "\n")
}

func plain(s string) string { return s }
