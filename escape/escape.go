// Package escape implements the HTML/XML escaping contract invoked by
// generated rendering code.
package escape

import (
	"fmt"
	"io"
)

// Writer substitutes HTML/XML special characters in everything written
// through it. All five replaced characters are single ASCII bytes, so the
// byte-wise scan never splits a multi-byte encoded character.
type Writer struct {
	W io.Writer
}

func replacement(b byte) string {
	switch b {
	case '"':
		return "&quot;"
	case '&':
		return "&amp;"
	case '<':
		return "&lt;"
	case '>':
		return "&gt;"
	case '\'':
		return "&apos;"
	}
	return ""
}

func (e Writer) Write(p []byte) (int, error) {
	last := 0
	for i := 0; i < len(p); i++ {
		repl := replacement(p[i])
		if repl == "" {
			continue
		}
		if last < i {
			if _, err := e.W.Write(p[last:i]); err != nil {
				return last, err
			}
		}
		if _, err := io.WriteString(e.W, repl); err != nil {
			return i, err
		}
		last = i + 1
	}
	if last < len(p) {
		if _, err := e.W.Write(p[last:]); err != nil {
			return last, err
		}
	}
	return len(p), nil
}

// Trusted disables escaping for the wrapped value.
type Trusted struct {
	Value any
}

// Value writes the display form of value to w, escaping unless the value is
// wrapped in Trusted, and appends a newline when the flag is set.
func Value(w io.Writer, value any, newline bool) error {
	if trusted, ok := value.(Trusted); ok {
		if _, err := fmt.Fprintf(w, "%v", trusted.Value); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(Writer{W: w}, "%v", value); err != nil {
			return err
		}
	}
	if !newline {
		return nil
	}
	_, err := io.WriteString(w, "\n")
	return err
}
