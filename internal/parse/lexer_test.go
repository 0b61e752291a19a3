package parse

import (
	"strings"
	"testing"
)

func lexAll(input string) []Token {
	lx := NewLexer(strings.NewReader(input))
	var out []Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == TokEOF {
			return out
		}
	}
}

func TestLexerTokens(t *testing.T) {
	got := lexAll(" S\tK (S)x")
	want := []TokKind{TokS, TokK, TokLParen, TokS, TokRParen, TokIllegal, TokEOF}
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Kind != want[i] {
			t.Fatalf("token %d mismatch: got %v, want %v", i, got[i].Kind, want[i])
		}
	}
	if got[5].Text != "x" {
		t.Fatalf("illegal token text mismatch: got %q", got[5].Text)
	}
}

func TestLexerPositions(t *testing.T) {
	got := lexAll("S K\n(S)")
	want := []Pos{
		{Line: 1, Col: 1, Offset: 0},
		{Line: 1, Col: 3, Offset: 2},
		{Line: 2, Col: 1, Offset: 4},
		{Line: 2, Col: 2, Offset: 5},
		{Line: 2, Col: 3, Offset: 6},
		{Line: 2, Col: 4, Offset: 7},
	}
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Pos != want[i] {
			t.Fatalf("token %d position mismatch: got %+v, want %+v", i, got[i].Pos, want[i])
		}
	}
}

func TestLexerLowercaseIsIllegal(t *testing.T) {
	got := lexAll("s")
	if got[0].Kind != TokIllegal || got[0].Text != "s" {
		t.Fatalf("expected illegal 's', got %+v", got[0])
	}
}

func TestLexerEOFRepeats(t *testing.T) {
	lx := NewLexer(strings.NewReader("S"))
	lx.Next()
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != TokEOF {
			t.Fatalf("expected EOF, got %v", tok.Kind)
		}
	}
	if !lx.EOF() {
		t.Fatalf("expected lexer to report EOF")
	}
}
