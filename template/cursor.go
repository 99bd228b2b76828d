package template

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"
)

// cursor tracks a byte position in the template source.
type cursor struct {
	src   string
	off   uint32
	limit uint32
}

func newCursor(src string) cursor {
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("template length overflow: %w", err))
	}
	return cursor{src: src, off: 0, limit: limit}
}

func (c *cursor) eof() bool {
	return c.off >= c.limit
}

// rest returns the unscanned tail of the source.
func (c *cursor) rest() string {
	return c.src[c.off:]
}

// bumpRune advances by one Unicode scalar, never splitting a multi-byte
// encoded character.
func (c *cursor) bumpRune() {
	if c.eof() {
		return
	}
	_, size := utf8.DecodeRuneInString(c.src[c.off:])
	c.off += mustU32(size)
}

func mustU32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return v
}
