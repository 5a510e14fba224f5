package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/herald/internal/configs"
	"github.com/PolarWolf314/herald/internal/identity"
	"github.com/PolarWolf314/herald/internal/ui"
	"github.com/spf13/cobra"
)

var (
	identityJSON bool

	// IdentityCmd shows the identity log lines are rendered with.
	IdentityCmd = &cobra.Command{
		Use:   "identity",
		Short: "Display the current identity",
		Long: `Displays the identity derived from the running process and user,
with any HERALD_* environment settings applied.

Examples:
  herald identity
  herald identity --json`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupCommon(cmd)
		},
		RunE: runIdentity,
	}
)

type identityView struct {
	Identifier string `json:"identifier"`
	Formal     string `json:"formal"`
	Informal   string `json:"informal"`
	Silent     bool   `json:"silent"`
	Case       string `json:"case"`
}

func init() {
	IdentityCmd.Flags().BoolVar(&identityJSON, "json", false, "output in JSON format")
	addCommonFlags(IdentityCmd)
}

func runIdentity(cmd *cobra.Command, args []string) error {
	settings, err := configs.LoadSettings(lookupEnv)
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to load settings: %v", err)
	}
	id := settings.Apply(identity.FromEnvironment())
	Logger.Infof("Identity resolved (identifier: %s)", id.Identifier())

	view := identityView{
		Identifier: id.Identifier(),
		Formal:     id.Formal(),
		Informal:   id.Informal(),
		Silent:     id.Silent,
		Case:       id.CasePolicy().String(),
	}

	out := cmd.OutOrStdout()
	if identityJSON {
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to marshal identity to JSON: %v", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintln(out, ui.Info.Sprint("Identity")+":")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-12s %s\n", "Identifier:", ui.Highlight.Sprint(view.Identifier))
	fmt.Fprintf(out, "  %-12s %s\n", "Formal:", ui.Success.Sprint(view.Formal))
	fmt.Fprintf(out, "  %-12s %s\n", "Informal:", ui.Success.Sprint(view.Informal))
	fmt.Fprintf(out, "  %-12s %t\n", "Silent:", view.Silent)
	fmt.Fprintf(out, "  %-12s %s\n", "Case:", view.Case)
	return nil
}

// resetIdentityState resets the identity command's global state for testing.
func resetIdentityState() {
	identityJSON = false
	resetCobraFlagState(IdentityCmd)
}
