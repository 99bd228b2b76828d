package reload_test

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boilerplate/reload"
	"boilerplate/template"
)

// helloTmpl mirrors the code the generator emits for the template
// "Hello, {{ self.Name }}!".
type helloTmpl struct {
	Name string
	path string
}

const helloSrc = "Hello, {{ self.Name }}!"

var (
	helloText   = []string{"Hello, ", "!"}
	helloTokens = mustTokens(helloSrc)
)

func mustTokens(src string) []template.Token {
	tokens, err := template.Tokenize(src)
	if err != nil {
		panic(err)
	}
	return tokens
}

func (self helloTmpl) Render(w io.Writer, text []string) error {
	if _, err := io.WriteString(w, text[0]); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%v", (self.Name)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, text[1]); err != nil {
		return err
	}
	return nil
}

func (self helloTmpl) Text() []string { return helloText }
func (self helloTmpl) Tokens() []template.Token { return helloTokens }
func (self helloTmpl) Path() string { return self.path }

func (self helloTmpl) String() string {
	var sb strings.Builder
	if err := self.Render(&sb, helloText); err != nil {
		panic(err)
	}
	return sb.String()
}

// loopTmpl mirrors the generated code for
// "{% for i := 0; i < 5; i++ { %}Hi!{% } %}".
type loopTmpl struct{}

var (
	loopText   = []string{"", "Hi!", ""}
	loopTokens = mustTokens("{% for i := 0; i < 5; i++ { %}Hi!{% } %}")
)

func (self loopTmpl) Render(w io.Writer, text []string) error {
	if _, err := io.WriteString(w, text[0]); err != nil {
		return err
	}
	for i := 0; i < 5; i++ {
		if _, err := io.WriteString(w, text[1]); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, text[2]); err != nil {
		return err
	}
	return nil
}

func (self loopTmpl) Text() []string { return loopText }
func (self loopTmpl) Tokens() []template.Token { return loopTokens }
func (self loopTmpl) Path() string { return "" }

// byteTmpl mirrors the generated code for the unclosed interpolation line
// "My favorite byte is $$ self.Byte".
type byteTmpl struct{ Byte int }

var (
	byteText   = []string{"My favorite byte is ", ""}
	byteTokens = mustTokens("My favorite byte is $$ self.Byte")
)

func (self byteTmpl) Render(w io.Writer, text []string) error {
	if _, err := io.WriteString(w, text[0]); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%v", (self.Byte)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, text[1]); err != nil {
		return err
	}
	return nil
}

func (self byteTmpl) Text() []string { return byteText }
func (self byteTmpl) Tokens() []template.Token { return byteTokens }
func (self byteTmpl) Path() string { return "" }

func TestRenderScenarios(t *testing.T) {
	assert.Equal(t, "Hello, Bob!", helloTmpl{Name: "Bob"}.String())

	var sb strings.Builder
	require.NoError(t, loopTmpl{}.Render(&sb, loopText))
	assert.Equal(t, "Hi!Hi!Hi!Hi!Hi!", sb.String())

	sb.Reset()
	require.NoError(t, byteTmpl{Byte: 38}.Render(&sb, byteText))
	assert.Equal(t, "My favorite byte is 38", sb.String())
}

func TestReloadSwapsText(t *testing.T) {
	tmpl := helloTmpl{Name: "Bob"}
	reloaded, err := reload.FromString(tmpl, "Goodbye, {{ self.Name }}?")
	require.NoError(t, err)
	assert.Equal(t, "Goodbye, Bob?", reloaded.String())
	// the original renderer is untouched
	assert.Equal(t, "Hello, Bob!", tmpl.String())
}

func TestReloadWhitespaceOnlyCodeChange(t *testing.T) {
	reloaded, err := reload.FromString(helloTmpl{Name: "Eve"}, "Hello, {{  self.Name  }}!")
	require.NoError(t, err)
	assert.Equal(t, "Hello, Eve!", reloaded.String())
}

func TestReloadLengthMismatch(t *testing.T) {
	_, err := reload.FromString(helloTmpl{}, "a{{ self.Name }}b{{ x }}c")
	var lengthErr *reload.LengthError
	require.ErrorAs(t, err, &lengthErr)
	assert.Equal(t, 5, lengthErr.New)
	assert.Equal(t, 3, lengthErr.Old)
}

func TestReloadIncompatible(t *testing.T) {
	_, err := reload.FromString(helloTmpl{}, "Hello, {{ self.ID }}!")
	var incompatibleErr *reload.IncompatibleError
	require.ErrorAs(t, err, &incompatibleErr)
	assert.Equal(t, "{{ self.ID }}", incompatibleErr.New)
	assert.Equal(t, "{{ self.Name }}", incompatibleErr.Old)
}

func TestReloadParseError(t *testing.T) {
	_, err := reload.FromString(helloTmpl{}, "Hello, {{ self.Name")
	var parseErr *reload.ParseError
	require.ErrorAs(t, err, &parseErr)
	var unmatched *template.UnmatchedDelimiterError
	assert.ErrorAs(t, err, &unmatched)
}

func TestFromPathWithoutPath(t *testing.T) {
	_, err := reload.FromPath(helloTmpl{})
	assert.ErrorIs(t, err, reload.ErrNoPath)
}

func TestFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("Hey, {{ self.Name }}."), 0o644))

	reloaded, err := reload.FromPath(helloTmpl{Name: "Bob", path: path})
	require.NoError(t, err)
	assert.Equal(t, "Hey, Bob.", reloaded.String())
}

func TestFromPathReadFailure(t *testing.T) {
	_, err := reload.FromPath(helloTmpl{path: filepath.Join(t.TempDir(), "missing.txt")})
	var ioErr *reload.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
