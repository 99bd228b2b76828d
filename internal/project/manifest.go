// Package project resolves template sources: the boilerplate.toml manifest,
// the templates directory, and the type-name/filename convention.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const noManifestMessage = "no boilerplate.toml found\nplease specify the template explicitly, e.g.:\n  boilerplate generate templates/quick-start.txt"

// Manifest is a loaded boilerplate.toml plus its location. The templates
// directory is an explicit configuration value; nothing is resolved from
// ambient environment state.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

type Config struct {
	Package   PackageConfig   `toml:"package"`
	Templates TemplatesConfig `toml:"templates"`
}

type PackageConfig struct {
	// Name is the Go package name for generated files.
	Name string `toml:"name"`
}

type TemplatesConfig struct {
	// Dir is the templates directory, relative to the manifest.
	Dir string `toml:"dir"`
	// Output is the directory generated files are written to, relative to
	// the manifest. Defaults to Dir's sibling named after the package.
	Output string `toml:"output"`
	// Reload embeds token tables and paths into generated code.
	Reload bool `toml:"reload"`
}

// ErrNoManifest reports that no boilerplate.toml was found walking up from
// the start directory.
var ErrNoManifest = errors.New(noManifestMessage)

func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "boilerplate.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadManifest ищет boilerplate.toml вверх от startDir и загружает его.
func LoadManifest(startDir string) (*Manifest, error) {
	manifestPath, ok, err := findManifest(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoManifest
	}
	cfg, err := loadConfig(manifestPath)
	if err != nil {
		return nil, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, nil
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if !meta.IsDefined("templates") {
		return Config{}, fmt.Errorf("%s: missing [templates]", path)
	}
	if !meta.IsDefined("templates", "dir") || strings.TrimSpace(cfg.Templates.Dir) == "" {
		return Config{}, fmt.Errorf("%s: missing [templates].dir", path)
	}
	if strings.TrimSpace(cfg.Templates.Output) == "" {
		cfg.Templates.Output = cfg.Package.Name
	}
	return cfg, nil
}

// TemplatesDir returns the absolute templates directory.
func (m *Manifest) TemplatesDir() string {
	return filepath.Join(m.Root, filepath.FromSlash(m.Config.Templates.Dir))
}

// OutputDir returns the absolute output directory for generated files.
func (m *Manifest) OutputDir() string {
	return filepath.Join(m.Root, filepath.FromSlash(m.Config.Templates.Output))
}
