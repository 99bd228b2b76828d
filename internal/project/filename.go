package project

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// FilenameFromIdent derives a template filename from a context type name:
// the name is split on uppercase boundaries, lowercased, joined with
// hyphens, and the final separator becomes a period forming name.ext.
// "QuickStartTxt" -> "quick-start.txt", "ABCHtml" -> "a-b-c.html".
func FilenameFromIdent(ident string) string {
	ident = norm.NFC.String(ident)

	var words []string
	for _, c := range ident {
		if len(words) == 0 || unicode.IsUpper(c) {
			words = append(words, "")
		}
		words[len(words)-1] += string(c)
	}

	var sb strings.Builder
	for i, word := range words {
		if i > 0 {
			if i == len(words)-1 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('-')
			}
		}
		sb.WriteString(word)
	}

	return strings.ToLower(sb.String())
}

// IdentFromFilename is the reverse mapping used when scanning a templates
// directory: "quick-start.txt" -> "QuickStartTxt". Segments are split on
// hyphens and the extension period, then title-cased and joined.
func IdentFromFilename(name string) string {
	name = norm.NFC.String(filepath.Base(name))

	var sb strings.Builder
	for _, segment := range strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '.'
	}) {
		runes := []rune(segment)
		runes[0] = unicode.ToUpper(runes[0])
		sb.WriteString(string(runes))
	}
	return sb.String()
}

// escapeExtensions are the template extensions escaped by default.
var escapeExtensions = []string{".html", ".htm", ".xml"}

// ShouldEscape reports whether templates with this filename default to the
// active escape policy.
func ShouldEscape(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range escapeExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// TemplatePath resolves the conventional template path for a type name
// under the given base directory.
func TemplatePath(baseDir, ident string) string {
	return filepath.Join(baseDir, FilenameFromIdent(ident))
}
