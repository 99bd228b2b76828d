// Package template implements the boilerplate template tokenizer: it scans
// a mixed text/code template into typed tokens, reconstructs tokens back to
// their source form, and decides whether two token streams are compatible
// for runtime reload.
package template

import "fmt"

// Kind represents the category of a template token.
type Kind uint8

const (
	// Text is a run of literal template text between blocks.
	Text Kind = iota
	// Code is a `{% ... %}` block spliced into the generated function body.
	Code
	// CodeLine is a `%% ...` block running to the next newline.
	CodeLine
	// Interpolation is a `{{ ... }}` expression written to the output.
	Interpolation
	// InterpolationLine is a `$$ ...` expression running to the next newline.
	InterpolationLine
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "Text"
	case Code:
		return "Code"
	case CodeLine:
		return "CodeLine"
	case Interpolation:
		return "Interpolation"
	case InterpolationLine:
		return "InterpolationLine"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// CodeBearing reports whether the kind carries embedded code or an
// expression rather than literal text.
func (k Kind) CodeBearing() bool {
	return k != Text
}

// Span is a half-open byte range into the template source.
type Span struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

func (s Span) Len() uint32 { return s.End - s.Start }

func (s Span) String() string { return fmt.Sprintf("%d-%d", s.Start, s.End) }

// Token is a single tokenized template segment. Contents are the raw bytes
// between the delimiters (or the literal text itself for Text tokens), so
// concatenating Render over a token stream reproduces the source exactly.
type Token struct {
	Kind     Kind
	Contents string
	// Closed reports whether a line-delimited block found its terminating
	// newline before the end of input. Always true for closed Code and
	// Interpolation blocks.
	Closed bool
	// Index is the 0-based ordinal among Text tokens. Dense over a token
	// stream: the Text tokens carry 0..k-1 in order of appearance.
	Index int
	Span  Span
}

// Render reconstructs the exact source substring the token was parsed
// from: open delimiter, contents, and the close delimiter if the token
// was closed. Text tokens are bare contents.
func (t Token) Render() string {
	if t.Kind == Text {
		return t.Contents
	}
	if !t.Closed {
		return t.Kind.OpenDelimiter() + t.Contents
	}
	return t.Kind.OpenDelimiter() + t.Contents + t.Kind.CloseDelimiter()
}
