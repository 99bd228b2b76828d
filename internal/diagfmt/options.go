// Package diagfmt renders diagnostics and token streams for the CLI.
package diagfmt

// PrettyOpts управляет человекочитаемым выводом диагностик.
type PrettyOpts struct {
	// Color включает ANSI-цвета.
	Color bool
	// Context — число строк контекста вокруг основного спана.
	Context int
}
