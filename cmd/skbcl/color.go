package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	headerColor = color.New(color.FgRed, color.Bold)
	caretColor  = color.New(color.FgGreen, color.Bold)
)

func setColor(mode string, f *os.File) error {
	switch mode {
	case "auto":
		color.NoColor = !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		return fmt.Errorf("bad -color value %q: want auto, always or never", mode)
	}
	return nil
}

// colorDiagnostic highlights the header and caret lines of a rendered
// syntax error.
func colorDiagnostic(text string) string {
	lines := strings.SplitAfter(text, "\n")
	for i, l := range lines {
		body := strings.TrimSuffix(l, "\n")
		nl := l[len(body):]
		switch {
		case i == 0 && body != "":
			lines[i] = headerColor.Sprint(body) + nl
		case strings.HasPrefix(body, "     | ") && strings.HasSuffix(body, "^"):
			cut := len(body) - 1
			lines[i] = body[:cut] + caretColor.Sprint("^") + nl
		}
	}
	return strings.Join(lines, "")
}
