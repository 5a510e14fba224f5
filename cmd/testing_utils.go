package cmd

import (
	"io"

	"github.com/spf13/cobra"
)

// Helper functions for testing

// ResetGlobalState resets all command global variables to their default values for testing.
func ResetGlobalState() {
	resetCommonState()
	resetLogState()
	resetSubjectsState()
	resetIdentityState()
	resetHighlightState()
}

// SetLookupEnv replaces the environment lookup used for HERALD_* settings for testing.
func SetLookupEnv(lookup func(string) (string, bool)) {
	lookupEnv = lookup
}

// NewTestCLI creates a fresh root command wired to the real subcommands,
// with output streams and arguments set.
func NewTestCLI(stdout, stderr io.Writer, args ...string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "herald",
		Short: "Herald - colorized, subject-tagged terminal log lines.",
	}
	for _, c := range []*cobra.Command{LogCmd, HighlightCmd, SubjectsCmd, IdentityCmd} {
		rootCmd.AddCommand(c)
		if stdout != nil {
			c.SetOut(stdout)
		}
		if stderr != nil {
			c.SetErr(stderr)
		}
	}
	if stdout != nil {
		rootCmd.SetOut(stdout)
	}
	if stderr != nil {
		rootCmd.SetErr(stderr)
	}
	rootCmd.SetArgs(args)
	return rootCmd
}
