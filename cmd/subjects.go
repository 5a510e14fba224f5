package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PolarWolf314/herald/internal/identity"
	"github.com/PolarWolf314/herald/internal/subject"
	"github.com/PolarWolf314/herald/internal/tag"
	"github.com/PolarWolf314/herald/internal/ui"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var (
	subjectsJSON bool

	// SubjectsCmd lists the subjects that have a fixed header color.
	SubjectsCmd = &cobra.Command{
		Use:   "subjects",
		Short: "List known subjects and their colors",
		Long: `Lists every subject with a fixed header color, rendered the way it
appears in a log line. Any other subject renders white.

Examples:
  herald subjects
  herald subjects --json`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupCommon(cmd)
		},
		RunE: runSubjects,
	}
)

// subjectColumn is the terminal width of the header column.
const subjectColumn = 16

type subjectEntry struct {
	Subject string `json:"subject"`
	Color   string `json:"color"`
}

func init() {
	SubjectsCmd.Flags().BoolVar(&subjectsJSON, "json", false, "output in JSON format")
	addCommonFlags(SubjectsCmd)
}

func runSubjects(cmd *cobra.Command, args []string) error {
	known := subject.Known()
	Logger.Debugf("Listing %d subjects", len(known))

	out := cmd.OutOrStdout()
	if subjectsJSON {
		entries := make([]subjectEntry, len(known))
		for i, e := range known {
			entries[i] = subjectEntry{Subject: e.Subject.String(), Color: e.Color.String()}
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to marshal subjects to JSON: %v", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	id := identity.New(identity.Name{})
	for _, e := range known {
		header := tag.Render(e.Subject, id, tag.Parts{})
		fmt.Fprintf(out, "  %s%s%s\n", header, padding(header), ui.Muted.Sprint(e.Color))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.Info.Sprint("→")+" Any other subject renders "+ui.Highlight.Sprint("white"))
	return nil
}

// padding fills header out to subjectColumn terminal cells.
func padding(header string) string {
	return strings.Repeat(" ", max(subjectColumn-runewidth.StringWidth(ui.StripANSI(header)), 1))
}

// resetSubjectsState resets the subjects command's global state for testing.
func resetSubjectsState() {
	subjectsJSON = false
	resetCobraFlagState(SubjectsCmd)
}
