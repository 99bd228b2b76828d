package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"boilerplate/internal/diagfmt"
	"boilerplate/internal/driver"
	"boilerplate/internal/gen"
	"boilerplate/internal/project"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags] [template.txt]",
	Short: "Generate Go rendering code from templates",
	Long: `Generate compiles templates into Go source files.

With a file argument a single template is generated. With --all every
template under the manifest's templates directory is generated. With --text
an inline template is generated to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("package", "", "package name for generated code")
	generateCmd.Flags().String("type", "", "context type name (default: derived from the filename)")
	generateCmd.Flags().String("text", "", "inline template source instead of a file")
	generateCmd.Flags().String("output", "", "output directory (default: print to stdout)")
	generateCmd.Flags().String("escape", "auto", "escape interpolations (auto|on|off)")
	generateCmd.Flags().Bool("reload", false, "embed token tables for runtime reloading")
	generateCmd.Flags().String("error-style", "return", "render error handling (return|panic)")
	generateCmd.Flags().Bool("all", false, "generate every template in the manifest's templates directory")
	generateCmd.Flags().Bool("no-cache", false, "bypass the generation cache")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts, err := generateOptions(cmd)
	if err != nil {
		return err
	}
	all, _ := cmd.Flags().GetBool("all")
	text, _ := cmd.Flags().GetString("text")

	switch {
	case all:
		if len(args) > 0 || text != "" {
			return fmt.Errorf("--all takes no template argument")
		}
		return generateAll(cmd, opts)
	case text != "":
		if len(args) > 0 {
			return fmt.Errorf("--text and a file argument are mutually exclusive")
		}
		return generateInline(cmd, text, opts)
	case len(args) == 1:
		return generateOne(cmd, args[0], opts)
	default:
		return fmt.Errorf("nothing to generate: pass a template file, --text, or --all")
	}
}

func generateOptions(cmd *cobra.Command) (driver.GenerateOptions, error) {
	var opts driver.GenerateOptions
	opts.Package, _ = cmd.Flags().GetString("package")
	opts.Type, _ = cmd.Flags().GetString("type")
	opts.OutputDir, _ = cmd.Flags().GetString("output")
	opts.Reload, _ = cmd.Flags().GetBool("reload")
	opts.NoCache, _ = cmd.Flags().GetBool("no-cache")
	opts.MaxDiagnostics = maxDiagnostics(cmd)

	escape, _ := cmd.Flags().GetString("escape")
	switch escape {
	case "auto":
		opts.Escape = driver.EscapeAuto
	case "on":
		opts.Escape = driver.EscapeOn
	case "off":
		opts.Escape = driver.EscapeOff
	default:
		return opts, fmt.Errorf("unknown escape mode: %s (must be auto, on, or off)", escape)
	}

	style, _ := cmd.Flags().GetString("error-style")
	switch style {
	case "return":
		opts.ErrorStyle = gen.ErrorReturn
	case "panic":
		opts.ErrorStyle = gen.ErrorPanic
	default:
		return opts, fmt.Errorf("unknown error style: %s (must be return or panic)", style)
	}
	return opts, nil
}

func openCache(opts driver.GenerateOptions) (*driver.DiskCache, error) {
	if opts.NoCache {
		return nil, nil
	}
	return driver.OpenDiskCache("boilerplate")
}

func generateInline(cmd *cobra.Command, text string, opts driver.GenerateOptions) error {
	if opts.Package == "" {
		opts.Package = "main"
	}
	if opts.Type == "" {
		return fmt.Errorf("--text requires --type")
	}
	res, err := driver.GenerateSource("<inline>", []byte(text), opts)
	if err != nil {
		return err
	}
	if !reportDiagnostics(cmd, res) {
		return fmt.Errorf("template has errors")
	}
	_, err = os.Stdout.Write(res.Output)
	return err
}

func generateOne(cmd *cobra.Command, path string, opts driver.GenerateOptions) error {
	if opts.Package == "" {
		// fall back to the manifest when run inside a project
		if man, err := project.LoadManifest("."); err == nil {
			opts.Package = man.Config.Package.Name
		} else {
			return fmt.Errorf("--package is required outside a project: %w", err)
		}
	}

	cache, err := openCache(opts)
	if err != nil {
		return err
	}
	res, err := driver.GenerateFile(path, opts, cache)
	if err != nil {
		return err
	}
	if !reportDiagnostics(cmd, res) {
		return fmt.Errorf("template has errors")
	}
	if opts.OutputDir == "" {
		_, err = os.Stdout.Write(res.Output)
		return err
	}
	reportGenerated(cmd, path, res)
	return nil
}

func generateAll(cmd *cobra.Command, opts driver.GenerateOptions) error {
	man, err := project.LoadManifest(".")
	if err != nil {
		return err
	}
	cache, err := openCache(opts)
	if err != nil {
		return err
	}
	results, err := driver.GenerateAll(man, opts, cache)
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if !reportDiagnostics(cmd, res) {
			failed++
			continue
		}
		reportGenerated(cmd, res.Tokenize.File.Path, res)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d templates failed", failed, len(results))
	}
	return nil
}

// reportDiagnostics prints the result's diagnostics and reports whether
// generation succeeded.
func reportDiagnostics(cmd *cobra.Command, res *driver.GenerateResult) bool {
	bag := res.Tokenize.Bag
	if bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, bag, res.Tokenize.FileSet, diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stderr),
			Context: 2,
		})
	}
	return !bag.HasErrors()
}

func reportGenerated(cmd *cobra.Command, path string, res *driver.GenerateResult) {
	if quiet(cmd) {
		return
	}
	suffix := ""
	if res.Cached {
		suffix = " (cached)"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "generated %s -> %s%s\n", path, res.OutputPath, suffix)
}
