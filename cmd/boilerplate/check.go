package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"boilerplate/internal/diagfmt"
	"boilerplate/internal/driver"
)

var (
	checkOKStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	checkFailStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] old.txt new.txt",
	Short: "Check that one template can be reloaded over another",
	Long: `Check verifies that the new template could replace the old one at
runtime: both parse, block counts match, and each block pair is compatible.`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	res, err := driver.Check(args[0], args[1], maxDiagnostics(cmd))
	if err != nil {
		return err
	}

	color := useColor(cmd, os.Stderr)
	if res.Bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{
			Color:   color,
			Context: 2,
		})
	}

	verdict, style := "OK", checkOKStyle
	if !res.Compatible() {
		verdict, style = "FAIL", checkFailStyle
	}
	if color {
		verdict = style.Render(verdict)
	}
	if !quiet(cmd) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s\n", verdict, args[0], args[1])
	}
	if !res.Compatible() {
		return fmt.Errorf("templates are not compatible")
	}
	return nil
}
