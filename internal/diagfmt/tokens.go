package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"boilerplate/internal/source"
	"boilerplate/template"
)

type TokenOutput struct {
	Kind     string        `json:"kind"`
	Contents string        `json:"contents"`
	Closed   bool          `json:"closed"`
	Index    *int          `json:"index,omitempty"`
	Span     template.Span `json:"span"`
}

const tokenPreviewLimit = 40

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []template.Token, fs *source.FileSet, file source.FileID) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(source.Span{
			File:  file,
			Start: tok.Span.Start,
			End:   tok.Span.End,
		})

		fmt.Fprintf(w, "%3d: %-17s", i, tok.Kind.String())

		preview := tok.Contents
		if len(preview) > tokenPreviewLimit {
			cut := tokenPreviewLimit
			// не режем многобайтовый символ посередине
			for cut > 0 && !utf8.RuneStart(preview[cut]) {
				cut--
			}
			preview = preview[:cut] + "..."
		}
		fmt.Fprintf(w, " %q", preview)

		if tok.Kind == template.Text {
			fmt.Fprintf(w, " [text %d]", tok.Index)
		}
		if tok.Kind.Line() && !tok.Closed {
			fmt.Fprint(w, " (unclosed)")
		}

		fmt.Fprintf(w, " at %d:%d-%d:%d\n",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []template.Token) error {
	output := make([]TokenOutput, 0, len(tokens))

	for _, tok := range tokens {
		tokenOut := TokenOutput{
			Kind:     tok.Kind.String(),
			Contents: tok.Contents,
			Closed:   tok.Closed,
			Span:     tok.Span,
		}
		if tok.Kind == template.Text {
			index := tok.Index
			tokenOut.Index = &index
		}
		output = append(output, tokenOut)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
