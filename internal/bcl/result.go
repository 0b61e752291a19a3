package bcl

import "skbcl/internal/parse"

// Result carries the outcome of a conversion as plain fields for callers
// that cannot receive a (value, error) pair. After a successful parse the
// tree is kept and bcl is set; otherwise only errMsg is set.
type Result struct {
	tree   *parse.Node
	bcl    string
	errMsg string
}

// ParseResult parses s and encodes the tree.
func ParseResult(s string) *Result {
	tree, err := parse.ParseString(s)
	if err != nil {
		return &Result{errMsg: parse.Render(err, s)}
	}
	return &Result{tree: tree, bcl: Encode(tree)}
}

// BCL returns the bit-string, or "" after a failure.
func (r *Result) BCL() string {
	return r.bcl
}

// ErrorMsg returns the rendered diagnostic, or "" after a success.
func (r *Result) ErrorMsg() string {
	return r.errMsg
}

func (r *Result) Tree() *parse.Node {
	return r.tree
}

func (r *Result) OK() bool {
	return r.tree != nil
}
