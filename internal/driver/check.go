package driver

import (
	"fmt"

	"boilerplate/internal/diag"
	"boilerplate/internal/source"
	"boilerplate/template"
)

type CheckResult struct {
	FileSet *source.FileSet
	Old     *source.File
	New     *source.File
	Bag     *diag.Bag
}

// Compatible reports whether the new template can replace the old one.
func (r *CheckResult) Compatible() bool {
	return !r.Bag.HasErrors()
}

// Check decides whether newPath's template could be hot-swapped in for
// oldPath's: both must parse, have the same number of blocks, and match
// pairwise under the compatibility rules. Every violation becomes a
// diagnostic; the error return covers I/O only.
func Check(oldPath, newPath string, maxDiagnostics int) (*CheckResult, error) {
	fs := source.NewFileSet()
	oldID, err := fs.Load(oldPath)
	if err != nil {
		return nil, err
	}
	newID, err := fs.Load(newPath)
	if err != nil {
		return nil, err
	}

	res := &CheckResult{
		FileSet: fs,
		Old:     fs.Get(oldID),
		New:     fs.Get(newID),
		Bag:     diag.NewBag(maxDiagnostics),
	}

	oldTokens, oldErr := template.Tokenize(string(res.Old.Content))
	newTokens, newErr := template.Tokenize(string(res.New.Content))
	if oldErr != nil {
		res.Bag.Add(parseDiagnostic(oldErr, oldID, "old"))
	}
	if newErr != nil {
		res.Bag.Add(parseDiagnostic(newErr, newID, "new"))
	}
	if oldErr != nil || newErr != nil {
		return res, nil
	}

	if len(newTokens) != len(oldTokens) {
		res.Bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.ReloadLength,
			Message:  fmt.Sprintf("new template has %d blocks but old template has %d blocks", len(newTokens), len(oldTokens)),
			Primary:  wholeFile(res.New),
		})
		return res, nil
	}

	for i, newTok := range newTokens {
		oldTok := oldTokens[i]
		if template.Compatible(oldTok, newTok) {
			continue
		}
		res.Bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.ReloadIncompatible,
			Message:  fmt.Sprintf("template blocks are not compatible: %s != %s", newTok.Render(), oldTok.Render()),
			Primary: source.Span{
				File:  newID,
				Start: newTok.Span.Start,
				End:   newTok.Span.End,
			},
			Notes: []diag.Note{
				{
					Span: source.Span{File: oldID, Start: oldTok.Span.Start, End: oldTok.Span.End},
					Msg:  fmt.Sprintf("old block was `%s`", oldTok.Render()),
				},
			},
		})
	}
	return res, nil
}

func parseDiagnostic(err error, fileID source.FileID, role string) diag.Diagnostic {
	d := lexDiagnostic(err, fileID)
	d.Code = diag.ReloadParse
	d.Message = fmt.Sprintf("failed to parse %s template: %v", role, err)
	return d
}

func wholeFile(f *source.File) source.Span {
	return source.Span{File: f.ID, Start: 0, End: uint32(len(f.Content))}
}
