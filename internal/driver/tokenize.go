// Package driver ties the pipeline together: it loads template sources,
// tokenizes them, generates Go code, and reports diagnostics through a Bag.
// The cobra commands are thin wrappers over this package.
package driver

import (
	"errors"
	"fmt"

	"boilerplate/internal/diag"
	"boilerplate/internal/source"
	"boilerplate/template"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []template.Token
	Bag     *diag.Bag
}

// Tokenize loads a template file and splits it into tokens. Parse failures
// land in the Bag as diagnostics; the returned error covers I/O only.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	// Создаём FileSet и загружаем файл
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fileID, maxDiagnostics), nil
}

// TokenizeSource tokenizes an in-memory template under a display name.
func TokenizeSource(name string, src []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return tokenizeFile(fs, fileID, maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	tokens, err := template.Tokenize(string(file.Content))
	if err != nil {
		bag.Add(lexDiagnostic(err, fileID))
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}

// lexDiagnostic maps a tokenizer error onto a diagnostic spanning the
// offending open delimiter.
func lexDiagnostic(err error, fileID source.FileID) diag.Diagnostic {
	var unmatched *template.UnmatchedDelimiterError
	if errors.As(err, &unmatched) {
		// delimiters are at most two bytes
		width := uint32(len(unmatched.Kind.OpenDelimiter()))
		return diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.LexUnmatchedDelimiter,
			Message:  err.Error(),
			Primary: source.Span{
				File:  fileID,
				Start: unmatched.Offset,
				End:   unmatched.Offset + width,
			},
			Notes: []diag.Note{
				{Msg: fmt.Sprintf("expected closing `%s` before end of input", unmatched.Kind.CloseDelimiter())},
			},
		}
	}
	return diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.UnknownCode,
		Message:  err.Error(),
		Primary:  source.Span{File: fileID},
	}
}
