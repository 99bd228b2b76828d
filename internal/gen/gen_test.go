package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boilerplate/template"
)

func generate(t *testing.T, src string, opts Options) string {
	t.Helper()
	tokens, err := template.Tokenize(src)
	require.NoError(t, err)
	out, err := Generate(tokens, opts)
	require.NoError(t, err)
	return string(out)
}

func TestGeneratePlainText(t *testing.T) {
	got := generate(t, "Hello, world!", Options{Package: "views", Type: "Hello"})

	want := `// Code generated by boilerplate; DO NOT EDIT.

package views

import (
	"io"
	"strings"
)

var helloText = []string{
	"Hello, world!",
}

func (self Hello) Render(w io.Writer, text []string) error {
	if _, err := io.WriteString(w, text[0]); err != nil {
		return err
	}
	return nil
}

func (self Hello) Text() []string { return helloText }

func (self Hello) String() string {
	var sb strings.Builder
	if err := self.Render(&sb, helloText); err != nil {
		panic(err)
	}
	return sb.String()
}
`
	assert.Equal(t, want, got)
}

func TestGenerateEscapeReload(t *testing.T) {
	got := generate(t, "Hi {{ self.N }}", Options{
		Package: "views",
		Type:    "PageHtml",
		Path:    "templates/page.html",
		Escape:  true,
		Reload:  true,
	})

	want := `// Code generated by boilerplate; DO NOT EDIT.

package views

import (
	"io"
	"strings"

	"boilerplate/escape"
	"boilerplate/reload"
	"boilerplate/template"
)

var pageHtmlText = []string{
	"Hi ",
	"",
}

var pageHtmlTokens = []template.Token{
	{Kind: template.Text, Contents: "Hi ", Closed: true, Index: 0, Span: template.Span{Start: 0, End: 3}},
	{Kind: template.Interpolation, Contents: " self.N ", Closed: true, Index: 0, Span: template.Span{Start: 3, End: 15}},
	{Kind: template.Text, Contents: "", Closed: true, Index: 1, Span: template.Span{Start: 15, End: 15}},
}

const pageHtmlPath = "templates/page.html"

func (self PageHtml) Render(w io.Writer, text []string) error {
	if _, err := io.WriteString(w, text[0]); err != nil {
		return err
	}
	if err := escape.Value(w, (self.N), false); err != nil {
		return err
	}
	if _, err := io.WriteString(w, text[1]); err != nil {
		return err
	}
	return nil
}

func (self PageHtml) Text() []string { return pageHtmlText }

func (self PageHtml) Tokens() []template.Token { return pageHtmlTokens }

func (self PageHtml) Path() string { return pageHtmlPath }

var _ reload.Template = PageHtml{}

func (self PageHtml) String() string {
	var sb strings.Builder
	if err := self.Render(&sb, pageHtmlText); err != nil {
		panic(err)
	}
	return sb.String()
}
`
	assert.Equal(t, want, got)
}

func TestGenerateLoop(t *testing.T) {
	got := generate(t, "{% for i := 0; i < 5; i++ { %}Hi!{% } %}", Options{
		Package: "views",
		Type:    "Loop",
	})

	assert.Contains(t, got, "\tfor i := 0; i < 5; i++ {\n")
	assert.Contains(t, got, "\tif _, err := io.WriteString(w, text[1]); err != nil {\n")
	assert.Contains(t, got, "\t}\n")
	// three text blocks: the empty boundaries and the loop body
	assert.Contains(t, got, "var loopText = []string{\n\t\"\",\n\t\"Hi!\",\n\t\"\",\n}")
}

func TestGenerateInterpolationLine(t *testing.T) {
	closed := generate(t, "$$ self.V\n", Options{Package: "views", Type: "V"})
	assert.Contains(t, closed, `fmt.Fprintf(w, "%v\n", (self.V))`)

	unclosed := generate(t, "$$ self.V", Options{Package: "views", Type: "V"})
	assert.Contains(t, unclosed, `fmt.Fprintf(w, "%v", (self.V))`)
	assert.NotContains(t, unclosed, `%v\n`)
}

func TestGenerateInterpolationLineEscaped(t *testing.T) {
	closed := generate(t, "$$ self.V\n", Options{Package: "views", Type: "V", Escape: true})
	assert.Contains(t, closed, "escape.Value(w, (self.V), true)")

	unclosed := generate(t, "$$ self.V", Options{Package: "views", Type: "V", Escape: true})
	assert.Contains(t, unclosed, "escape.Value(w, (self.V), false)")
}

func TestGenerateCodeLine(t *testing.T) {
	got := generate(t, "%% if self.Ok {\nyes\n%% }\n", Options{Package: "views", Type: "Cond"})
	assert.Contains(t, got, "\tif self.Ok {\n")
	assert.Contains(t, got, "\t}\n")
}

func TestGeneratePanicStyle(t *testing.T) {
	got := generate(t, "x{{ self.V }}", Options{
		Package:    "views",
		Type:       "Helper",
		ErrorStyle: ErrorPanic,
	})

	assert.Contains(t, got, "func (self Helper) Render(w io.Writer, text []string) {\n")
	assert.Contains(t, got, "\t\tpanic(err)\n")
	assert.NotContains(t, got, "return err")
	assert.Contains(t, got, "\tself.Render(&sb, helperText)\n")
}

func TestGenerateRejectsReloadWithPanicStyle(t *testing.T) {
	tokens, err := template.Tokenize("x")
	require.NoError(t, err)
	_, err = Generate(tokens, Options{
		Package:    "views",
		Type:       "X",
		Reload:     true,
		ErrorStyle: ErrorPanic,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error-returning")
}

func TestGenerateRequiresPackageAndType(t *testing.T) {
	tokens, err := template.Tokenize("x")
	require.NoError(t, err)
	_, err = Generate(tokens, Options{Type: "X"})
	require.Error(t, err)
	_, err = Generate(tokens, Options{Package: "views"})
	require.Error(t, err)
}

func TestLowerFirst(t *testing.T) {
	assert.Equal(t, "quickStartTxt", lowerFirst("QuickStartTxt"))
	assert.Equal(t, "x", lowerFirst("X"))
	assert.Equal(t, "already", lowerFirst("already"))
}

func TestGeneratedTextMatchesTextBlocks(t *testing.T) {
	src := "a{{ v }}b%% c()\nd"
	tokens, err := template.Tokenize(src)
	require.NoError(t, err)
	got := generate(t, src, Options{Package: "p", Type: "T"})
	for _, block := range template.TextBlocks(tokens) {
		assert.True(t, strings.Contains(got, "\""+block+"\"") || block == "",
			"text table missing %q", block)
	}
}
