package parse

import "strings"

// Format renders a tree as SK source. Nested applications are always
// parenthesized, so parsing the result yields the same tree.
func Format(n *Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	formatNode(&b, n, false)
	return b.String()
}

func formatNode(b *strings.Builder, n *Node, nested bool) {
	switch n.Kind {
	case KS:
		b.WriteByte('S')
	case KK:
		b.WriteByte('K')
	case KApp:
		if nested {
			b.WriteByte('(')
		}
		for i, child := range n.List {
			if i > 0 {
				b.WriteByte(' ')
			}
			formatNode(b, child, true)
		}
		if nested {
			b.WriteByte(')')
		}
	}
}
