package template

import "strings"

// blocks lists the code-bearing kinds in delimiter priority order.
// Matching checks open delimiters in this exact order; all four are
// distinct two-byte sequences, so at most one can match a position.
var blocks = [...]Kind{Code, CodeLine, Interpolation, InterpolationLine}

// OpenDelimiter returns the opening delimiter for the kind.
// Text has no delimiters and returns "".
func (k Kind) OpenDelimiter() string {
	switch k {
	case Code:
		return "{%"
	case CodeLine:
		return "%%"
	case Interpolation:
		return "{{"
	case InterpolationLine:
		return "$$"
	}
	return ""
}

// CloseDelimiter returns the closing delimiter for the kind.
// Line-delimited kinds close on a newline.
func (k Kind) CloseDelimiter() string {
	switch k {
	case Code:
		return "%}"
	case CodeLine, InterpolationLine:
		return "\n"
	case Interpolation:
		return "}}"
	}
	return ""
}

// Line reports whether the kind is line-delimited and may therefore be
// left unclosed at the end of input.
func (k Kind) Line() bool {
	return k == CodeLine || k == InterpolationLine
}

// matchBlock returns the kind whose open delimiter is a prefix of rest.
func matchBlock(rest string) (Kind, bool) {
	for _, k := range blocks {
		if strings.HasPrefix(rest, k.OpenDelimiter()) {
			return k, true
		}
	}
	return Text, false
}
