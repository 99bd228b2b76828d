package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "boilerplate.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[package]
name = "views"

[templates]
dir = "templates"
output = "views"
reload = true
`)

	m, err := LoadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, "views", m.Config.Package.Name)
	assert.Equal(t, "templates", m.Config.Templates.Dir)
	assert.True(t, m.Config.Templates.Reload)
	assert.Equal(t, filepath.Join(dir, "templates"), m.TemplatesDir())
	assert.Equal(t, filepath.Join(dir, "views"), m.OutputDir())
}

func TestLoadManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `
[package]
name = "views"

[templates]
dir = "templates"
`)
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	m, err := LoadManifest(nested)
	require.NoError(t, err)
	assert.Equal(t, root, m.Root)
}

func TestLoadManifestDefaultsOutput(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[package]
name = "pages"

[templates]
dir = "tmpl"
`)

	m, err := LoadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, "pages", m.Config.Templates.Output)
}

func TestLoadManifestEmptyPackageName(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[package]
name = ""

[templates]
dir = "templates"
`)
	_, err := LoadManifest(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[package].name")
}

func TestLoadManifestMissingTemplates(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[package]
name = "views"
`)
	_, err := LoadManifest(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing [templates]")
}
