package source

import (
	"testing"
)

func TestAddVirtualAndGet(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.txt", []byte("hello\nworld\n"))
	f := fs.Get(id)
	if f.Path != "test.txt" {
		t.Errorf("Expected path test.txt, got %q", f.Path)
	}
	if string(f.Content) != "hello\nworld\n" {
		t.Errorf("Content mismatch: %q", f.Content)
	}
	if len(f.LineIdx) != 2 {
		t.Errorf("Expected 2 newline positions, got %d", len(f.LineIdx))
	}
}

func TestContentPreservedVerbatim(t *testing.T) {
	// CRLF and BOM bytes must survive untouched: templates round-trip
	// byte-for-byte.
	raw := []byte("\xEF\xBB\xBFa\r\nb")
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("raw.txt", raw))
	if string(f.Content) != string(raw) {
		t.Errorf("Content was normalized: %q", f.Content)
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.txt", []byte("ab\ncd\nef"))
	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 2, 1},
		{4, 2, 2},
		{6, 3, 1},
	}
	for _, tc := range cases {
		start, _ := fs.Resolve(Span{File: id, Start: tc.off, End: tc.off})
		if start.Line != tc.line || start.Col != tc.col {
			t.Errorf("Offset %d: expected %d:%d, got %d:%d",
				tc.off, tc.line, tc.col, start.Line, start.Col)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("test.txt", []byte("first\nsecond\nthird")))
	if got := f.GetLine(1); got != "first" {
		t.Errorf("Line 1: %q", got)
	}
	if got := f.GetLine(2); got != "second" {
		t.Errorf("Line 2: %q", got)
	}
	if got := f.GetLine(3); got != "third" {
		t.Errorf("Line 3: %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Errorf("Line 4 should be empty, got %q", got)
	}
}

func TestGetByPath(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("a/b.txt", []byte("x"))
	if _, ok := fs.GetByPath("a/b.txt"); !ok {
		t.Error("Expected to find a/b.txt")
	}
	if _, ok := fs.GetByPath("missing.txt"); ok {
		t.Error("Did not expect to find missing.txt")
	}
}
