package source

// FileID uniquely identifies a template file within a FileSet.
type FileID uint32

// File captures metadata and content for a single template file. Content is
// kept byte-for-byte as read: templates must round-trip exactly, so no
// BOM or CRLF normalization is applied.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
}

// LineCol represents a human-readable position in a template file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
