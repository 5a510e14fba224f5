package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/herald/cmd"
	"github.com/PolarWolf314/herald/internal/ui"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "herald",
	Short: "Herald - colorized, subject-tagged terminal log lines.",
	Long: `Herald renders log lines with a bracketed, colored subject header and a
highlighted message body.

Usage:
  herald <command> [flags]

Available Commands:
  log        Render a colorized log line
  highlight  Highlight text without a header
  subjects   List known subjects and their colors
  identity   Display the current identity

Run 'herald help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		banner := figure.NewFigure("herald", "standard", true)
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Sprint(banner.String()))
		fmt.Fprintln(cmd.OutOrStdout(), "Welcome to Herald! Run "+ui.Code.Sprint("herald --help")+" to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.LogCmd)
	rootCmd.AddCommand(cmd.HighlightCmd)
	rootCmd.AddCommand(cmd.SubjectsCmd)
	rootCmd.AddCommand(cmd.IdentityCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error.Sprint(err))
		os.Exit(1)
	}
}
