package parse

import (
	"bufio"
	"errors"
	"io"
)

// TokKind identifies a lexical token.
type TokKind int

const (
	TokEOF TokKind = iota
	TokS
	TokK
	TokLParen
	TokRParen
	TokIllegal
)

func (k TokKind) String() string {
	switch k {
	case TokEOF:
		return "end of input"
	case TokS:
		return "'S'"
	case TokK:
		return "'K'"
	case TokLParen:
		return "'('"
	case TokRParen:
		return "')'"
	default:
		return "illegal character"
	}
}

// Token is a single lexeme. Text is set for TokIllegal.
type Token struct {
	Kind TokKind
	Text string
	Pos  Pos
}

// Lexer splits SK source into tokens, skipping whitespace.
type Lexer struct {
	r   *bufio.Reader
	Err error

	line   int
	col    int
	offset int
	eof    bool
}

type lexRune struct {
	r    rune
	pos  Pos
	next Pos
	err  error
}

func NewLexer(rd io.Reader) *Lexer {
	return &Lexer{r: bufio.NewReader(rd), line: 1}
}

// Next returns the next token. Once the input is exhausted it keeps
// returning TokEOF. A read error other than io.EOF is stored in Err and
// reported as TokEOF.
func (lx *Lexer) Next() Token {
	for {
		r, pos, err := lx.readRune()
		if err != nil {
			if !errors.Is(err, io.EOF) && lx.Err == nil {
				lx.Err = err
			}
			return Token{Kind: TokEOF, Pos: pos}
		}
		switch r {
		case ' ', '\t', '\r', '\n':
			continue
		case 'S':
			return Token{Kind: TokS, Pos: pos}
		case 'K':
			return Token{Kind: TokK, Pos: pos}
		case '(':
			return Token{Kind: TokLParen, Pos: pos}
		case ')':
			return Token{Kind: TokRParen, Pos: pos}
		default:
			return Token{Kind: TokIllegal, Text: string(r), Pos: pos}
		}
	}
}

// EOF reports whether the lexer has reached end of input.
func (lx *Lexer) EOF() bool {
	return lx.eof
}

func (lx *Lexer) readRune() (rune, Pos, error) {
	return lx.advance(lx.readRawRune())
}

func (lx *Lexer) advance(lr lexRune) (rune, Pos, error) {
	lx.line = lr.next.Line
	lx.col = lr.next.Col
	lx.offset = lr.next.Offset
	return lr.r, lr.pos, lr.err
}

func (lx *Lexer) readRawRune() lexRune {
	cur := Pos{Line: lx.line, Col: lx.col + 1, Offset: lx.offset}
	r, size, err := lx.r.ReadRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			lx.eof = true
		}
		return lexRune{err: err, pos: cur, next: Pos{Line: lx.line, Col: lx.col, Offset: lx.offset}}
	}
	next := Pos{Line: lx.line, Col: cur.Col, Offset: lx.offset + size}
	if r == '\n' {
		next.Line++
		next.Col = 0
	}
	return lexRune{r: r, pos: cur, next: next}
}
