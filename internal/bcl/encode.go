// Package bcl encodes SK combinator trees as Binary Combinatory Logic.
//
// Binary application is written 1XY, K is 00 and S is 01. An n-ary
// application node is a left-nested chain of n-1 binary applications, so it
// encodes as n-1 ones followed by the encodings of its children in order.
// The code is prefix-free: a decoder always knows where a term ends, and any
// bits after that point (byte padding) carry no meaning.
package bcl

import "skbcl/internal/parse"

// Encode returns the BCL bit-string of n as '0' and '1' characters.
func Encode(n *parse.Node) string {
	return string(AppendEncode(make([]byte, 0, encodedLen(n)), n))
}

// AppendEncode appends the BCL bit-string of n to dst.
func AppendEncode(dst []byte, n *parse.Node) []byte {
	switch n.Kind {
	case parse.KS:
		return append(dst, '0', '1')
	case parse.KK:
		return append(dst, '0', '0')
	}
	for i := 1; i < len(n.List); i++ {
		dst = append(dst, '1')
	}
	for _, child := range n.List {
		dst = AppendEncode(dst, child)
	}
	return dst
}

func encodedLen(n *parse.Node) int {
	if n.Kind != parse.KApp {
		return 2
	}
	size := len(n.List) - 1
	for _, child := range n.List {
		size += encodedLen(child)
	}
	return size
}
