package source

import (
	"fmt"
	"path/filepath"

	"fortio.org/safecast"
)

// buildLineIndex записывает байтовые позиции всех \n в содержимом.
func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, 16)
	for i, b := range content {
		if b == '\n' {
			pos, err := safecast.Conv[uint32](i)
			if err != nil {
				panic(fmt.Errorf("line index overflow: %w", err))
			}
			out = append(out, pos)
		}
	}
	return out
}

// toLineCol converts a byte offset to a 1-based line/column pair. Columns
// are byte columns; diagfmt handles display width separately.
func toLineCol(lineIdx []uint32, off uint32) LineCol {
	line := uint32(1)
	lineStart := uint32(0)
	for _, nl := range lineIdx {
		if off <= nl {
			break
		}
		line++
		lineStart = nl + 1
	}
	return LineCol{Line: line, Col: off - lineStart + 1}
}

func normalizePath(path string) string {
	return filepath.Clean(path)
}
