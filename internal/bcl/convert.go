package bcl

import "skbcl/internal/parse"

// Diagnostic is the error returned by Convert. Its message is the rendered,
// caret-annotated report of the underlying parse error.
type Diagnostic struct {
	Err  error
	Text string
}

func (d *Diagnostic) Error() string {
	return d.Text
}

func (d *Diagnostic) Unwrap() error {
	return d.Err
}

// Convert parses an SK expression and returns its BCL bit-string. On a
// syntax error it returns a *Diagnostic.
func Convert(text string) (string, error) {
	return ConvertWith(&parse.Parser{}, text)
}

// ConvertWith is Convert using the given parser settings.
func ConvertWith(p *parse.Parser, text string) (string, error) {
	tree, err := p.ParseString(text)
	if err != nil {
		return "", &Diagnostic{Err: err, Text: parse.Render(err, text)}
	}
	return Encode(tree), nil
}
