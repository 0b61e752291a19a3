package parse

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSyntax     = errors.New("syntax error")
	ErrUnexpected = fmt.Errorf("%w: unexpected input", ErrSyntax)
	ErrUnclosed   = fmt.Errorf("%w: unclosed group", ErrSyntax)
	ErrEmptyGroup = fmt.Errorf("%w: empty group", ErrSyntax)
	ErrTooDeep    = fmt.Errorf("%w: nesting too deep", ErrSyntax)
)

// SyntaxError describes the first structural violation found in the input.
// Open is set for errors about a group and points at its '('.
type SyntaxError struct {
	Err      error
	Pos      Pos
	Found    string
	Expected string
	Open     *Pos
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %d:%d: %s", ErrSyntax, e.Pos.Line, e.Pos.Col, e.Msg())
}

// Msg returns the error description without the position prefix.
func (e *SyntaxError) Msg() string {
	var b strings.Builder
	switch {
	case errors.Is(e.Err, ErrUnclosed):
		b.WriteString("unclosed '('")
	case errors.Is(e.Err, ErrEmptyGroup):
		b.WriteString("empty '()'")
	case errors.Is(e.Err, ErrTooDeep):
		b.WriteString("groups nested too deeply")
	default:
		b.WriteString("unexpected " + e.Found)
	}
	if e.Open != nil {
		fmt.Fprintf(&b, " (group opened at %d:%d)", e.Open.Line, e.Open.Col)
	}
	if e.Expected != "" {
		b.WriteString(", expected " + e.Expected)
		if e.Found != "" && !errors.Is(e.Err, ErrUnexpected) {
			b.WriteString(", found " + e.Found)
		}
	}
	return b.String()
}

// Render returns a multi-line diagnostic for src: a header with the position
// and message, the offending line with up to one line of context on either
// side, and a caret under the column.
func (e *SyntaxError) Render(src string) string {
	return renderSnippet(src, "SYNTAX ERROR", e.Pos.Line, e.Pos.Col, e.Msg())
}

// Render renders err against src. Errors other than *SyntaxError are
// returned as their plain message.
func Render(err error, src string) string {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se.Render(src)
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// renderSnippet treats line and col as 1-based and clamps them to src.
func renderSnippet(src, header string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", caretPad(lines[line-1], col))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}

// caretPad keeps tabs so the caret lines up with the echoed source line.
func caretPad(text string, col int) string {
	var b strings.Builder
	i := 1
	for _, r := range text {
		if i >= col {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
		i++
	}
	for ; i < col; i++ {
		b.WriteByte(' ')
	}
	return b.String()
}
