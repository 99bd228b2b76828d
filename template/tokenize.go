package template

import "strings"

// Tokenize scans src into an ordered token stream.
//
// A Text token is emitted at every gap position, including zero-length gaps
// at the start of the source, between adjacent blocks, and at the end, so an
// empty template yields exactly one empty Text token. Line-delimited blocks
// that never find their newline run to the end of input with Closed=false
// and terminate the stream. An unterminated `{%` or `{{` aborts tokenization
// with an UnmatchedDelimiterError; no partial token list is returned.
func Tokenize(src string) ([]Token, error) {
	cur := newCursor(src)
	tokens := make([]Token, 0, 8)
	segStart := uint32(0)
	index := 0

	for !cur.eof() {
		kind, ok := matchBlock(cur.rest())
		if !ok {
			cur.bumpRune()
			continue
		}

		beforeOpen := cur.off
		afterOpen := beforeOpen + mustU32(len(kind.OpenDelimiter()))

		var beforeClose, afterClose uint32
		closed := true
		switch rel := strings.Index(src[afterOpen:], kind.CloseDelimiter()); {
		case rel >= 0:
			beforeClose = afterOpen + mustU32(rel)
			afterClose = beforeClose + mustU32(len(kind.CloseDelimiter()))
		case kind.Line():
			beforeClose = cur.limit
			afterClose = cur.limit
			closed = false
		default:
			return nil, &UnmatchedDelimiterError{Kind: kind, Offset: beforeOpen}
		}

		tokens = append(tokens, Token{
			Kind:     Text,
			Contents: src[segStart:beforeOpen],
			Closed:   true,
			Index:    index,
			Span:     Span{Start: segStart, End: beforeOpen},
		})
		index++

		tokens = append(tokens, Token{
			Kind:     kind,
			Contents: src[afterOpen:beforeClose],
			Closed:   closed,
			Span:     Span{Start: beforeOpen, End: afterClose},
		})

		cur.off = afterClose
		segStart = afterClose
	}

	tokens = append(tokens, Token{
		Kind:     Text,
		Contents: src[segStart:],
		Closed:   true,
		Index:    index,
		Span:     Span{Start: segStart, End: cur.limit},
	})

	return tokens, nil
}

// TextBlocks returns the contents of the Text tokens in index order.
func TextBlocks(tokens []Token) []string {
	var text []string
	for _, tok := range tokens {
		if tok.Kind == Text {
			text = append(text, tok.Contents)
		}
	}
	return text
}
