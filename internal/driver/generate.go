package driver

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/natefinch/atomic"
	"golang.org/x/sync/errgroup"

	"boilerplate/internal/gen"
	"boilerplate/internal/project"
)

// EscapeMode selects the escaping policy for generated interpolations.
type EscapeMode uint8

const (
	// EscapeAuto escapes based on the template file extension.
	EscapeAuto EscapeMode = iota
	EscapeOn
	EscapeOff
)

type GenerateOptions struct {
	// Package is the target package name; GenerateAll fills it from the
	// manifest when empty.
	Package string
	// Type overrides the context type name derived from the filename.
	Type   string
	Escape EscapeMode
	// Reload embeds token tables into the generated code.
	Reload     bool
	ErrorStyle gen.ErrorStyle
	// OutputDir is where generated files land; empty means do not write,
	// only return the bytes.
	OutputDir string
	NoCache   bool
	// MaxDiagnostics bounds the diagnostics collected per template.
	MaxDiagnostics int
}

// genInputs are the fully resolved per-template inputs; they determine the
// generated bytes and therefore the cache key.
type genInputs struct {
	Package    string
	Type       string
	Path       string
	Escape     bool
	Reload     bool
	ErrorStyle gen.ErrorStyle
}

type GenerateResult struct {
	// Tokenize carries the file set and diagnostics for reporting.
	Tokenize *TokenizeResult
	// Output is the generated Go source, nil when tokenization failed.
	Output []byte
	// OutputPath is the file written, "" when nothing was written.
	OutputPath string
	// Cached reports whether Output came from the disk cache.
	Cached bool
}

// GenerateFile generates Go code for one template file.
func GenerateFile(path string, opts GenerateOptions, cache *DiskCache) (*GenerateResult, error) {
	tr, err := Tokenize(path, opts.MaxDiagnostics)
	if err != nil {
		return nil, err
	}
	return generateTokenized(tr, filepath.Base(path), path, opts, cache)
}

// GenerateSource generates Go code for an in-memory template. Inline
// sources are never cached and never written to disk.
func GenerateSource(name string, src []byte, opts GenerateOptions) (*GenerateResult, error) {
	tr := TokenizeSource(name, src, opts.MaxDiagnostics)
	opts.OutputDir = ""
	opts.NoCache = true
	return generateTokenized(tr, name, "", opts, nil)
}

func generateTokenized(tr *TokenizeResult, base, path string, opts GenerateOptions, cache *DiskCache) (*GenerateResult, error) {
	res := &GenerateResult{Tokenize: tr}
	if tr.Bag.HasErrors() {
		return res, nil
	}

	in := resolveInputs(base, path, opts)
	if in.Type == "" {
		return nil, fmt.Errorf("cannot derive a type name from %q; pass one explicitly", base)
	}

	key := cacheKey(tr.File.Content, in)
	if !opts.NoCache {
		var payload DiskPayload
		hit, err := cache.Get(key, &payload)
		if err != nil {
			return nil, err
		}
		if hit {
			res.Output = payload.Output
			res.Cached = true
			return res, writeOutput(res, in, opts)
		}
	}

	out, err := gen.Generate(tr.Tokens, gen.Options{
		Package:    in.Package,
		Type:       in.Type,
		Path:       in.Path,
		Escape:     in.Escape,
		Reload:     in.Reload,
		ErrorStyle: in.ErrorStyle,
	})
	if err != nil {
		return nil, err
	}
	res.Output = out

	if !opts.NoCache {
		if err := cache.Put(key, &DiskPayload{
			Schema: diskCacheSchemaVersion,
			Type:   in.Type,
			Path:   in.Path,
			Output: out,
		}); err != nil {
			return nil, err
		}
	}
	return res, writeOutput(res, in, opts)
}

func resolveInputs(base, path string, opts GenerateOptions) genInputs {
	in := genInputs{
		Package:    opts.Package,
		Type:       opts.Type,
		Path:       path,
		Reload:     opts.Reload,
		ErrorStyle: opts.ErrorStyle,
	}
	if in.Type == "" {
		in.Type = project.IdentFromFilename(base)
	}
	switch opts.Escape {
	case EscapeOn:
		in.Escape = true
	case EscapeOff:
		in.Escape = false
	default:
		in.Escape = project.ShouldEscape(base)
	}
	return in
}

func writeOutput(res *GenerateResult, in genInputs, opts GenerateOptions) error {
	if opts.OutputDir == "" {
		return nil
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return err
	}
	out := filepath.Join(opts.OutputDir, outputFilename(in.Type))
	if err := atomic.WriteFile(out, bytes.NewReader(res.Output)); err != nil {
		return err
	}
	res.OutputPath = out
	return nil
}

// outputFilename maps a type name onto its generated file: QuickStartTxt
// becomes quick_start_txt.go.
func outputFilename(ident string) string {
	name := project.FilenameFromIdent(ident)
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	return name + ".go"
}

// GenerateAll generates every template under the manifest's templates
// directory, in parallel. Manifest settings fill in options the caller left
// unset.
func GenerateAll(man *project.Manifest, opts GenerateOptions, cache *DiskCache) ([]*GenerateResult, error) {
	if opts.Package == "" {
		opts.Package = man.Config.Package.Name
	}
	if opts.OutputDir == "" {
		opts.OutputDir = man.OutputDir()
	}
	if man.Config.Templates.Reload {
		opts.Reload = true
	}
	// type names always come from filenames in manifest mode
	opts.Type = ""

	dir := man.TemplatesDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)

	results := make([]*GenerateResult, len(paths))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			res, err := GenerateFile(path, opts, cache)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
