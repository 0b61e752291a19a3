package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"skbcl/internal/bcl"
	"skbcl/internal/parse"
)

const demoExpr = "S (S (K S) (S (K (S (K S))) (S (K (S (K K))) (S (K (S (K S))) (S (K S) K))))) (K (S (K K)))"

type options struct {
	parser   *parse.Parser
	tree     bool
	format   bool
	hexBytes bool
}

func main() {
	demo := flag.Bool("demo", false, "convert the built-in demo expression")
	tree := flag.Bool("t", false, "print the parsed tree")
	format := flag.Bool("f", false, "print the expression in canonical form")
	trace := flag.Bool("x", false, "trace the parser")
	hexBytes := flag.Bool("b", false, "also print the packed bytes in hex")
	depth := flag.Int("depth", parse.DefaultMaxDepth, "maximum paren nesting")
	colorMode := flag.String("color", "auto", "color diagnostics: auto, always or never")
	flag.Parse()

	if err := setColor(*colorMode, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	opts := &options{
		parser: &parse.Parser{
			MaxDepth:    *depth,
			Trace:       *trace,
			TraceWriter: os.Stderr,
		},
		tree:     *tree,
		format:   *format,
		hexBytes: *hexBytes,
	}

	switch {
	case *demo:
		runDemo(os.Stdout)
	case flag.NArg() > 0:
		os.Exit(convert(opts, strings.Join(flag.Args(), " "), os.Stdout, os.Stderr))
	case term.IsTerminal(int(os.Stdin.Fd())):
		runInteractive(opts)
	default:
		os.Exit(runScript(opts, os.Stdin, os.Stdout, os.Stderr))
	}
}

func runDemo(w io.Writer) {
	bits, err := bcl.Convert(demoExpr)
	if err != nil {
		fmt.Fprintf(w, "Err:\n%s\n", err)
		return
	}
	fmt.Fprintf(w, "Ok:\n%s (%d bytes)\n", bits, bcl.ByteLen(bits))
}

// runScript converts all of rd as a single expression.
func runScript(opts *options, rd io.Reader, stdout, stderr io.Writer) int {
	src, err := io.ReadAll(rd)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return convert(opts, string(src), stdout, stderr)
}

func convert(opts *options, text string, stdout, stderr io.Writer) int {
	tree, err := opts.parser.ParseString(text)
	if err != nil {
		fmt.Fprint(stderr, colorDiagnostic(parse.Render(err, text)))
		return 1
	}
	if opts.tree {
		fmt.Fprint(stderr, parse.Dump(tree))
	}
	if opts.format {
		fmt.Fprintln(stdout, parse.Format(tree))
	}
	bits := bcl.Encode(tree)
	fmt.Fprintf(stdout, "%s (%d bytes)\n", bits, bcl.ByteLen(bits))
	if opts.hexBytes {
		packed, err := bcl.Pack(bits)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintf(stdout, "%x\n", packed)
	}
	return 0
}

func runInteractive(opts *options) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := historyFile()
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = line.ReadHistory(f)
			f.Close()
		}
	}

	prompt := "sk> "
	if p := os.Getenv("SKBCL_PROMPT"); p != "" {
		prompt = p
	}
	for {
		input, err := line.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			break
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)
		convert(opts, input, os.Stdout, os.Stderr)
	}

	if historyPath != "" {
		if f, err := os.Create(historyPath); err == nil {
			defer f.Close()
			_, _ = line.WriteHistory(f)
		}
	}
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".skbcl_history")
}
