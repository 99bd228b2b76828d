package template

import "strings"

// Compatible reports whether new can safely replace old at runtime without
// recompiling. Text tokens are always mutually compatible: literal text may
// change freely between reloads. Code-bearing tokens must carry identical
// trimmed contents, and their kinds must match, except that Code and
// CodeLine may stand in for each other (a block-vs-line rewrite of the same
// code). Interpolation and InterpolationLine never cross-match: the
// generated write statement differs between them. For two tokens of the
// same line-delimited kind the Closed flags must agree, since a lost
// trailing newline changes the rendered output.
func Compatible(old, new Token) bool {
	if old.Kind == Text || new.Kind == Text {
		return old.Kind == Text && new.Kind == Text
	}
	if strings.TrimSpace(old.Contents) != strings.TrimSpace(new.Contents) {
		return false
	}
	if old.Kind == new.Kind {
		if old.Kind.Line() && old.Closed != new.Closed {
			return false
		}
		return true
	}
	return codeFamily(old.Kind) && codeFamily(new.Kind)
}

func codeFamily(k Kind) bool {
	return k == Code || k == CodeLine
}
