package parse

import (
	"fmt"
	"io"
	"strings"
)

// DefaultMaxDepth bounds paren nesting when Parser.MaxDepth is unset.
const DefaultMaxDepth = 1000

const (
	expectItem      = "'S', 'K' or '('"
	expectItemOrEnd = "'S', 'K', '(' or end of input"
	expectItemClose = "'S', 'K', '(' or ')'"
)

// Parser holds parse configuration. The zero value is ready to use.
type Parser struct {
	MaxDepth    int
	Trace       bool
	TraceWriter io.Writer
}

// Parse reads input and returns the combinator tree.
func Parse(rd io.Reader) (*Node, error) {
	var p Parser
	return p.Parse(rd)
}

// ParseString is Parse over a string.
func ParseString(s string) (*Node, error) {
	return Parse(strings.NewReader(s))
}

// ParseString parses s with p's settings.
func (p *Parser) ParseString(s string) (*Node, error) {
	return p.Parse(strings.NewReader(s))
}

// Parse reads an expression from rd. An input holding no items denotes the
// identity combinator S K K.
func (p *Parser) Parse(rd io.Reader) (*Node, error) {
	st := &state{cfg: p, lx: NewLexer(rd), max: p.MaxDepth}
	if st.max <= 0 {
		st.max = DefaultMaxDepth
	}
	st.next()
	n, err := st.expression()
	if st.lx.Err != nil {
		return nil, st.lx.Err
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

type state struct {
	cfg   *Parser
	lx    *Lexer
	tok   Token
	depth int
	max   int
}

func (st *state) next() {
	st.tok = st.lx.Next()
}

func (st *state) tracef(format string, args ...any) {
	if !st.cfg.Trace || st.cfg.TraceWriter == nil {
		return
	}
	fmt.Fprintf(st.cfg.TraceWriter, format, args...)
}

func (st *state) expression() (*Node, error) {
	start := st.tok.Pos
	var items []*Node
	for startsItem(st.tok.Kind) {
		n, err := st.item()
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	switch st.tok.Kind {
	case TokEOF:
	case TokRParen:
		return nil, &SyntaxError{Err: ErrUnexpected, Pos: st.tok.Pos, Found: "')' with no open group", Expected: expectItemOrEnd}
	default:
		return nil, st.unexpected(expectItemOrEnd)
	}
	if len(items) == 0 {
		st.tracef("+ empty expression, using S K K\n")
		return Identity(), nil
	}
	return collapse(items, start), nil
}

func (st *state) item() (*Node, error) {
	tok := st.tok
	switch tok.Kind {
	case TokS:
		st.tracef("+ S at %d:%d\n", tok.Pos.Line, tok.Pos.Col)
		st.next()
		return &Node{Kind: KS, Pos: tok.Pos}, nil
	case TokK:
		st.tracef("+ K at %d:%d\n", tok.Pos.Line, tok.Pos.Col)
		st.next()
		return &Node{Kind: KK, Pos: tok.Pos}, nil
	case TokLParen:
		return st.group()
	default:
		return nil, st.unexpected(expectItem)
	}
}

func (st *state) group() (*Node, error) {
	open := st.tok.Pos
	if st.depth >= st.max {
		return nil, &SyntaxError{Err: ErrTooDeep, Pos: open, Expected: fmt.Sprintf("at most %d nested groups", st.max)}
	}
	st.depth++
	defer func() { st.depth-- }()
	st.next()

	var items []*Node
	for startsItem(st.tok.Kind) {
		n, err := st.item()
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	switch st.tok.Kind {
	case TokRParen:
	case TokEOF:
		return nil, &SyntaxError{Err: ErrUnclosed, Pos: st.tok.Pos, Found: "end of input", Expected: "')'", Open: &open}
	default:
		return nil, st.unexpected(expectItemClose)
	}
	if len(items) == 0 {
		return nil, &SyntaxError{Err: ErrEmptyGroup, Pos: st.tok.Pos, Found: "')'", Expected: expectItem, Open: &open}
	}
	st.tracef("+ group of %d at %d:%d\n", len(items), open.Line, open.Col)
	st.next()
	return collapse(items, open), nil
}

func (st *state) unexpected(expected string) error {
	found := st.tok.Kind.String()
	if st.tok.Kind == TokIllegal {
		found = fmt.Sprintf("%q", st.tok.Text)
	}
	return &SyntaxError{Err: ErrUnexpected, Pos: st.tok.Pos, Found: found, Expected: expected}
}

func startsItem(k TokKind) bool {
	switch k {
	case TokS, TokK, TokLParen:
		return true
	default:
		return false
	}
}
