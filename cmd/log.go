package cmd

import (
	"strconv"

	"github.com/PolarWolf314/herald/internal/configs"
	"github.com/PolarWolf314/herald/internal/console"
	"github.com/PolarWolf314/herald/internal/identity"
	"github.com/PolarWolf314/herald/internal/subject"
	"github.com/spf13/cobra"
)

var (
	logSubject     string
	logCategory    string
	logSubcategory string
	logPrefix      string
	logSuffix      string
	logSeparator   string
	logTerminator  string
	logSilent      bool
	logUppercase   bool
	logCapitalize  bool
	logMode        string
	logKeywords    []string

	// LogCmd renders its arguments as a single herald log line.
	LogCmd = &cobra.Command{
		Use:   "log [values...]",
		Short: "Render a colorized log line",
		Long: `Joins the given values into a message, highlights it, and prints it
behind a bracketed subject header.

Quoted text is painted yellow, brackets and dashes are emphasized, and the
subject picks the header color. The subjects "error" and "success" also
recolor the message itself.

Settings can also come from the environment (HERALD_SILENT, HERALD_UPPERCASE,
HERALD_CAPITALIZE, HERALD_MODE, HERALD_IDENTIFIER, HERALD_NAME). Flags win.

Examples:
  # A plain info line
  herald log --subject info hello

  # A categorized cache line: [ LAYER1CACHE ] warmed
  herald log -s cache --category layer1 warmed

  # Paint the message in one color instead of highlighting
  herald log -s error --mode flat 'bad "thing" happened'`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupCommon(cmd)
		},
		RunE: runLog,
	}
)

func init() {
	flags := LogCmd.Flags()
	flags.StringVarP(&logSubject, "subject", "s", "", "subject tag for the header (path-like tags are simplified)")
	flags.StringVar(&logCategory, "category", "", "header segment before the subject")
	flags.StringVar(&logSubcategory, "subcategory", "", "header segment after the subject")
	flags.StringVar(&logPrefix, "prefix", "", "fallback for --category")
	flags.StringVar(&logSuffix, "suffix", "", "fallback for --subcategory")
	flags.StringVar(&logSeparator, "separator", " ", "string placed between values")
	flags.StringVar(&logTerminator, "terminator", `\n`, "string written after the line (Go escapes allowed)")
	flags.BoolVar(&logSilent, "silent", false, "suppress all output")
	flags.BoolVar(&logUppercase, "uppercase", true, "upper-case header text")
	flags.BoolVar(&logCapitalize, "capitalize", false, "title-case header text (ignored with --uppercase)")
	flags.StringVar(&logMode, "mode", "highlight", "message rendering: highlight or flat")
	flags.StringSliceVar(&logKeywords, "keyword", nil, "literal words to paint like quoted text (repeatable)")
	addCommonFlags(LogCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting log command")
	Logger.Debugf("Args: %q", args)

	settings, err := configs.LoadSettings(lookupEnv)
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to load settings: %v", err)
	}

	id := settings.Apply(identity.FromEnvironment())
	flags := cmd.Flags()
	if flags.Changed("silent") {
		id.Silent = logSilent
	}
	if flags.Changed("uppercase") {
		id.Uppercase = logUppercase
	}
	if flags.Changed("capitalize") {
		id.Capitalize = logCapitalize
	}
	Logger.Debugf("Identity: %s, silent=%t, case=%s", id.Identifier(), id.Silent, id.CasePolicy())

	mode := settings.ModeOr(console.ModeHighlight)
	if flags.Changed("mode") {
		if mode, err = console.ParseMode(logMode); err != nil {
			return Logger.ErrorfAndReturn("Invalid --mode: %v", err)
		}
	}

	terminator, err := unescape(logTerminator)
	if err != nil {
		return Logger.ErrorfAndReturn("Invalid --terminator %q: %v", logTerminator, err)
	}

	opts := []console.Option{
		console.WithSeparator(logSeparator),
		console.WithTerminator(terminator),
		console.WithCategory(logCategory),
		console.WithSubcategory(logSubcategory),
		console.WithPrefix(logPrefix),
		console.WithSuffix(logSuffix),
	}
	if logSubject != "" {
		s, err := subject.Parse(logSubject)
		if err != nil {
			return Logger.ErrorfAndReturn("Invalid --subject %q: %v", logSubject, err)
		}
		opts = append(opts, console.WithSubject(s))
	}

	printer := console.NewPrinter(cmd.OutOrStdout(), id)
	printer.Mode = mode
	printer.Highlighter.Keywords = logKeywords

	values := make([]any, len(args))
	for i, a := range args {
		values[i] = a
	}

	result, err := printer.Emit(values, opts...)
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to write log line: %v", err)
	}
	Logger.Infof("Log line %s (mode: %s)", result, mode)
	return nil
}

// unescape interprets Go escape sequences such as \n and \t.
func unescape(s string) (string, error) {
	return strconv.Unquote(`"` + s + `"`)
}

// resetLogState resets the log command's global state for testing.
func resetLogState() {
	logSubject = ""
	logCategory = ""
	logSubcategory = ""
	logPrefix = ""
	logSuffix = ""
	logSeparator = " "
	logTerminator = `\n`
	logSilent = false
	logUppercase = true
	logCapitalize = false
	logMode = "highlight"
	logKeywords = nil
	resetCobraFlagState(LogCmd)
}
