package parse

// KindsPreorder collects node kinds in preorder.
func KindsPreorder(n *Node) []Kind {
	if n == nil {
		return nil
	}
	out := []Kind{n.Kind}
	for _, child := range n.List {
		out = append(out, KindsPreorder(child)...)
	}
	return out
}

// Walk calls fn for each node in preorder, stopping early if fn returns false.
func Walk(n *Node, fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.List {
		if !Walk(child, fn) {
			return false
		}
	}
	return true
}

// Leaves counts the S and K nodes of a tree.
func Leaves(n *Node) int {
	count := 0
	Walk(n, func(x *Node) bool {
		if x.Kind != KApp {
			count++
		}
		return true
	})
	return count
}

// Depth returns the height of the tree; a single leaf has depth 1.
func Depth(n *Node) int {
	if n == nil {
		return 0
	}
	deepest := 0
	for _, child := range n.List {
		if d := Depth(child); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}
