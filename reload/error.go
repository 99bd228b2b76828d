package reload

import (
	"errors"
	"fmt"
)

// ErrNoPath is returned by FromPath when the template's origin was an
// inline literal rather than a file.
var ErrNoPath = errors.New("template has no path")

// ParseError wraps a tokenizer failure on the replacement template.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse new template: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LengthError reports differing token counts between the replacement and
// the compiled template.
type LengthError struct {
	New int
	Old int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("new template has %d blocks but old template has %d blocks", e.New, e.Old)
}

// IncompatibleError reports the first incompatible token pair, carrying
// both tokens' reconstructed source text.
type IncompatibleError struct {
	New string
	Old string
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("template blocks are not compatible: %s != %s", e.New, e.Old)
}

// IOError reports a failure reading the replacement template from disk.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("I/O error loading template from: %s", e.Path)
}

func (e *IOError) Unwrap() error { return e.Err }
