package cmd

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/herald/internal/highlight"
	"github.com/PolarWolf314/herald/internal/ui"
	"github.com/spf13/cobra"
)

var (
	highlightSpans    bool
	highlightKeywords []string

	// HighlightCmd prints a message with highlighting but no header.
	HighlightCmd = &cobra.Command{
		Use:   "highlight [text...]",
		Short: "Highlight text without a header",
		Long: `Runs the message highlighter over the joined arguments and prints the
result. With --spans, also lists every substituted run.

Examples:
  herald highlight 'set "key" to {value}'
  herald highlight --spans --keyword equals '"a" equals "b"'`,
		Args: cobra.MinimumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupCommon(cmd)
		},
		RunE: runHighlight,
	}
)

func init() {
	HighlightCmd.Flags().BoolVar(&highlightSpans, "spans", false, "list substituted runs")
	HighlightCmd.Flags().StringSliceVar(&highlightKeywords, "keyword", nil, "literal words to paint like quoted text (repeatable)")
	addCommonFlags(HighlightCmd)
}

func runHighlight(cmd *cobra.Command, args []string) error {
	h := highlight.Highlighter{Keywords: highlightKeywords}
	out, spans := h.Scan(strings.Join(args, " "))
	Logger.Debugf("Recorded %d spans", len(spans))

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, out)
	if !highlightSpans {
		return nil
	}

	runes := []rune(out)
	for _, s := range spans {
		text := ui.StripANSI(string(runes[s.Start:s.End]))
		fmt.Fprintf(w, "  %s %s\n", ui.Muted.Sprintf("%d:%d", s.Start, s.End), ui.Highlight.Sprint(text))
	}
	return nil
}

// resetHighlightState resets the highlight command's global state for testing.
func resetHighlightState() {
	highlightSpans = false
	highlightKeywords = nil
	resetCobraFlagState(HighlightCmd)
}
