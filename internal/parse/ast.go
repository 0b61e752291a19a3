package parse

// Kind represents the AST node kind.
type Kind int

const (
	KS Kind = iota
	KK
	KApp
)

func (k Kind) String() string {
	switch k {
	case KS:
		return "S"
	case KK:
		return "K"
	case KApp:
		return "APP"
	default:
		return "?"
	}
}

// Pos tracks a source position. Line and Col are 1-based, Offset is the
// byte offset into the input.
type Pos struct {
	Line   int
	Col    int
	Offset int
}

// Node is a combinator tree node. List holds the children of a KApp node in
// application order: App(f, a, b) denotes ((f a) b).
type Node struct {
	Kind Kind
	Pos  Pos
	List []*Node
}

// S constructs the S combinator.
func S() *Node {
	return &Node{Kind: KS}
}

// K constructs the K combinator.
func K() *Node {
	return &Node{Kind: KK}
}

// App constructs an application node. Nil children are dropped. A single
// child is returned as is and an empty list yields nil, so the result never
// holds fewer than two elements.
func App(xs ...*Node) *Node {
	var list []*Node
	for _, n := range xs {
		if n != nil {
			list = append(list, n)
		}
	}
	switch len(list) {
	case 0:
		return nil
	case 1:
		return list[0]
	}
	return &Node{Kind: KApp, List: list}
}

// Identity returns S K K, the tree an empty expression denotes.
func Identity() *Node {
	return App(S(), K(), K())
}

// collapse applies the grouping rule: one item stands for itself, more are
// applied left to right.
func collapse(items []*Node, pos Pos) *Node {
	if len(items) == 1 {
		return items[0]
	}
	return &Node{Kind: KApp, Pos: pos, List: items}
}

// Equal reports whether two trees have the same shape, ignoring positions.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || len(a.List) != len(b.List) {
		return false
	}
	for i := range a.List {
		if !Equal(a.List[i], b.List[i]) {
			return false
		}
	}
	return true
}

func (n *Node) String() string {
	return Format(n)
}
