// Package gen emits Go rendering code from a tokenized template. The
// embedded template code is spliced verbatim; it is opaque text here and any
// syntax error in it surfaces later, from the Go compiler.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"boilerplate/template"
)

// ErrorStyle controls how sink-write failures propagate from the generated
// method. The choice is made once per generation, not per statement.
type ErrorStyle uint8

const (
	// ErrorReturn emits a fallible Render method returning an error.
	ErrorReturn ErrorStyle = iota
	// ErrorPanic emits an infallible Render that panics on write failures,
	// for call sites that cannot report errors.
	ErrorPanic
)

type Options struct {
	// Package is the package name of the generated file.
	Package string
	// Type is the context type the rendering methods hang off.
	Type string
	// Path is the originating template file path, "" for inline sources.
	Path string
	// Escape routes interpolations through the escaping contract.
	Escape bool
	// Reload embeds the token table and path so the template can be
	// re-bound to fresh text at runtime.
	Reload     bool
	ErrorStyle ErrorStyle
}

// Generate emits a Go source file with one output-producing statement per
// token: literal writes for Text, verbatim splices for Code/CodeLine, and
// formatted (optionally escaped) writes for interpolations.
func Generate(tokens []template.Token, opts Options) ([]byte, error) {
	if opts.Package == "" || opts.Type == "" {
		return nil, errors.New("gen: Package and Type are required")
	}
	if opts.Reload && opts.ErrorStyle == ErrorPanic {
		return nil, errors.New("gen: reload requires the error-returning render style")
	}

	var buf bytes.Buffer
	prefix := lowerFirst(opts.Type)

	buf.WriteString("// Code generated by boilerplate; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", opts.Package)
	writeImports(&buf, tokens, opts)

	writeTextTable(&buf, tokens, prefix)
	if opts.Reload {
		writeTokenTable(&buf, tokens, prefix)
		fmt.Fprintf(&buf, "const %sPath = %s\n\n", prefix, strconv.Quote(opts.Path))
	}

	writeRender(&buf, tokens, opts)
	writeAccessors(&buf, opts, prefix)

	return buf.Bytes(), nil
}

func writeImports(buf *bytes.Buffer, tokens []template.Token, opts Options) {
	interpolates := false
	for _, tok := range tokens {
		if tok.Kind == template.Interpolation || tok.Kind == template.InterpolationLine {
			interpolates = true
			break
		}
	}

	buf.WriteString("import (\n")
	if interpolates && !opts.Escape {
		buf.WriteString("\t\"fmt\"\n")
	}
	buf.WriteString("\t\"io\"\n")
	buf.WriteString("\t\"strings\"\n")

	var module []string
	if interpolates && opts.Escape {
		module = append(module, "boilerplate/escape")
	}
	if opts.Reload {
		module = append(module, "boilerplate/reload", "boilerplate/template")
	}
	if len(module) > 0 {
		buf.WriteString("\n")
		for _, path := range module {
			fmt.Fprintf(buf, "\t%s\n", strconv.Quote(path))
		}
	}
	buf.WriteString(")\n\n")
}

func writeTextTable(buf *bytes.Buffer, tokens []template.Token, prefix string) {
	fmt.Fprintf(buf, "var %sText = []string{\n", prefix)
	for _, tok := range tokens {
		if tok.Kind == template.Text {
			fmt.Fprintf(buf, "\t%s,\n", strconv.Quote(tok.Contents))
		}
	}
	buf.WriteString("}\n\n")
}

func writeTokenTable(buf *bytes.Buffer, tokens []template.Token, prefix string) {
	fmt.Fprintf(buf, "var %sTokens = []template.Token{\n", prefix)
	for _, tok := range tokens {
		fmt.Fprintf(buf,
			"\t{Kind: template.%s, Contents: %s, Closed: %t, Index: %d, Span: template.Span{Start: %d, End: %d}},\n",
			tok.Kind, strconv.Quote(tok.Contents), tok.Closed, tok.Index,
			tok.Span.Start, tok.Span.End)
	}
	buf.WriteString("}\n\n")
}

func writeRender(buf *bytes.Buffer, tokens []template.Token, opts Options) {
	if opts.ErrorStyle == ErrorReturn {
		fmt.Fprintf(buf, "func (self %s) Render(w io.Writer, text []string) error {\n", opts.Type)
	} else {
		fmt.Fprintf(buf, "func (self %s) Render(w io.Writer, text []string) {\n", opts.Type)
	}

	for _, tok := range tokens {
		writeStatement(buf, tok, opts)
	}

	if opts.ErrorStyle == ErrorReturn {
		buf.WriteString("\treturn nil\n")
	}
	buf.WriteString("}\n\n")
}

func writeStatement(buf *bytes.Buffer, tok template.Token, opts Options) {
	fail := "\t\treturn err\n"
	if opts.ErrorStyle == ErrorPanic {
		fail = "\t\tpanic(err)\n"
	}

	switch tok.Kind {
	case template.Text:
		fmt.Fprintf(buf, "\tif _, err := io.WriteString(w, text[%d]); err != nil {\n", tok.Index)
		buf.WriteString(fail)
		buf.WriteString("\t}\n")

	case template.Code, template.CodeLine:
		// control flow: the splice may open a block that later statements
		// render inside of
		fmt.Fprintf(buf, "\t%s\n", strings.TrimSpace(tok.Contents))

	case template.Interpolation, template.InterpolationLine:
		newline := tok.Kind == template.InterpolationLine && tok.Closed
		expr := strings.TrimSpace(tok.Contents)
		if opts.Escape {
			fmt.Fprintf(buf, "\tif err := escape.Value(w, (%s), %t); err != nil {\n", expr, newline)
		} else {
			verb := "%v"
			if newline {
				verb = "%v\\n"
			}
			fmt.Fprintf(buf, "\tif _, err := fmt.Fprintf(w, \"%s\", (%s)); err != nil {\n", verb, expr)
		}
		buf.WriteString(fail)
		buf.WriteString("\t}\n")
	}
}

func writeAccessors(buf *bytes.Buffer, opts Options, prefix string) {
	fmt.Fprintf(buf, "func (self %s) Text() []string { return %sText }\n\n", opts.Type, prefix)

	if opts.Reload {
		fmt.Fprintf(buf, "func (self %s) Tokens() []template.Token { return %sTokens }\n\n", opts.Type, prefix)
		fmt.Fprintf(buf, "func (self %s) Path() string { return %sPath }\n\n", opts.Type, prefix)
		fmt.Fprintf(buf, "var _ reload.Template = %s{}\n\n", opts.Type)
	}

	fmt.Fprintf(buf, "func (self %s) String() string {\n", opts.Type)
	buf.WriteString("\tvar sb strings.Builder\n")
	if opts.ErrorStyle == ErrorReturn {
		fmt.Fprintf(buf, "\tif err := self.Render(&sb, %sText); err != nil {\n", prefix)
		buf.WriteString("\t\tpanic(err)\n")
		buf.WriteString("\t}\n")
	} else {
		fmt.Fprintf(buf, "\tself.Render(&sb, %sText)\n", prefix)
	}
	buf.WriteString("\treturn sb.String()\n")
	buf.WriteString("}\n")
}

func lowerFirst(ident string) string {
	for i, r := range ident {
		if i == 0 {
			return string(unicode.ToLower(r)) + ident[len(string(r)):]
		}
	}
	return ident
}
