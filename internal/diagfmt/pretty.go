package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"boilerplate/internal/diag"
	"boilerplate/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Для каждой диагностики печатает:
//
//	<path>:<line>:<col>: <SEV> [<CODE>]: <message>
//
// затем строку-контекст с подчёркиванием ^~~~ по основному спану.
// Ожидается bag.Sort() заранее для детерминированного порядка.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)

	sev := d.Severity.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}

	fmt.Fprintf(w, "%s:%d:%d: %s [%s]: %s\n",
		file.Path, start.Line, start.Col, sev, d.Code.ID(), d.Message)

	writeContext(w, file, start, end, opts)

	for _, note := range d.Notes {
		// заметка может указывать в другой файл (например, старый шаблон
		// при проверке совместимости)
		noteFile, noteSpan := file, d.Primary
		if note.Span != (source.Span{}) {
			noteFile = fs.Get(note.Span.File)
			noteSpan = note.Span
		}
		noteStart, _ := fs.Resolve(noteSpan)
		fmt.Fprintf(w, "%s:%d:%d: note: %s\n",
			noteFile.Path, noteStart.Line, noteStart.Col, note.Msg)
	}
}

// writeContext печатает строку с основным спаном и подчёркивание под ней.
// Ширина отступа считается через runewidth, чтобы каретка совпадала с
// колонкой и для многобайтовых символов.
func writeContext(w io.Writer, file *source.File, start, end source.LineCol, opts PrettyOpts) {
	line := file.GetLine(start.Line)
	if line == "" && start.Col > 1 {
		return
	}

	first := uint32(1)
	if opts.Context > 0 && start.Line > uint32(opts.Context) {
		first = start.Line - uint32(opts.Context)
	}
	for n := first; n < start.Line; n++ {
		fmt.Fprintf(w, "  %4d | %s\n", n, file.GetLine(n))
	}
	fmt.Fprintf(w, "  %4d | %s\n", start.Line, line)

	prefix := line
	if int(start.Col-1) <= len(line) {
		prefix = line[:start.Col-1]
	}
	pad := runewidth.StringWidth(prefix)

	underlineLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		span := line
		if int(end.Col-1) <= len(line) {
			span = line[start.Col-1 : end.Col-1]
		}
		if width := runewidth.StringWidth(span); width > 1 {
			underlineLen = width
		}
	}

	underline := "^" + strings.Repeat("~", underlineLen-1)
	if opts.Color {
		underline = errorColor.Sprint(underline)
	}
	fmt.Fprintf(w, "       | %s%s\n", strings.Repeat(" ", pad), underline)
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}
