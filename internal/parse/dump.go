package parse

import (
	"fmt"
	"strings"
)

// Dump returns a readable, indented representation of a tree.
func Dump(n *Node) string {
	var b strings.Builder
	dumpNode(&b, n, 0)
	return b.String()
}

func dumpNode(b *strings.Builder, n *Node, indent int) {
	if n == nil {
		return
	}
	pad := strings.Repeat(" ", indent)
	switch n.Kind {
	case KApp:
		fmt.Fprintf(b, "%s- %s n=%d%s\n", pad, n.Kind, len(n.List), posSuffix(n.Pos))
		for _, child := range n.List {
			dumpNode(b, child, indent+4)
		}
	default:
		fmt.Fprintf(b, "%s- %s%s\n", pad, n.Kind, posSuffix(n.Pos))
	}
}

func posSuffix(p Pos) string {
	if p.Line == 0 {
		return ""
	}
	return fmt.Sprintf(" @%d:%d", p.Line, p.Col)
}
