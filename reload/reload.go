// Package reload re-binds a compiled template's literal text at runtime
// without recompiling. The replacement template must tokenize to a stream
// compatible with the compiled one: code-bearing tokens are never
// re-executed from the new source, only Text contents are swapped in.
package reload

import (
	"io"
	"os"
	"strings"

	"boilerplate/template"
)

// Template is the surface of a generated rendering type.
type Template interface {
	// Render writes the template output to w using the provided text
	// blocks in Text-token index order.
	Render(w io.Writer, text []string) error
	// Text returns the compiled-in literal text blocks.
	Text() []string
	// Tokens returns the full token stream of the compiled template.
	Tokens() []template.Token
	// Path returns the originating template file path, or "" for inline
	// sources.
	Path() string
}

// Reloaded is a compiled template re-bound to fresh literal text. It wraps
// the original compiled rendering logic; a failed reload never produces one,
// so the previous renderer stays intact.
type Reloaded struct {
	text  []string
	inner Template
}

// Render writes the output of the compiled logic with the reloaded text.
func (r *Reloaded) Render(w io.Writer) error {
	return r.inner.Render(w, r.text)
}

func (r *Reloaded) String() string {
	var sb strings.Builder
	if err := r.Render(&sb); err != nil {
		return "<render error: " + err.Error() + ">"
	}
	return sb.String()
}

// FromString validates src against the compiled template and, on success,
// returns a renderer bound to the new text blocks. Text contents are copied
// so the result does not alias the caller's buffer.
func FromString(tmpl Template, src string) (*Reloaded, error) {
	tokens, err := template.Tokenize(src)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	old := tmpl.Tokens()
	if len(tokens) != len(old) {
		return nil, &LengthError{New: len(tokens), Old: len(old)}
	}

	var text []string
	for i, tok := range tokens {
		if !template.Compatible(old[i], tok) {
			return nil, &IncompatibleError{New: tok.Render(), Old: old[i].Render()}
		}
		if tok.Kind == template.Text {
			text = append(text, strings.Clone(tok.Contents))
		}
	}

	return &Reloaded{text: text, inner: tmpl}, nil
}

// FromPath re-reads the template's originating file and reloads from it.
func FromPath(tmpl Template) (*Reloaded, error) {
	path := tmpl.Path()
	if path == "" {
		return nil, ErrNoPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return FromString(tmpl, string(data))
}
