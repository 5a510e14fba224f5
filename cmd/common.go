package cmd

import (
	"fmt"
	"io"
	"os"

	kerrors "github.com/PolarWolf314/herald/internal/errors"
	logger "github.com/PolarWolf314/herald/internal/logging"
	"github.com/PolarWolf314/herald/internal/ui"
	"github.com/PolarWolf314/herald/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose   bool
	debug     bool
	colorMode = colorFlag("auto")
	Logger    logger.Logger

	// lookupEnv and isTerminal are swapped out in tests.
	lookupEnv  = os.LookupEnv
	isTerminal = utils.IsTerminal
)

// colorFlag is the --color value: auto, always or never.
type colorFlag string

func (c *colorFlag) String() string { return string(*c) }

func (c *colorFlag) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorFlag(v)
		return nil
	default:
		return fmt.Errorf("%q (want auto, always or never): %w", v, kerrors.ErrInvalidColorMode)
	}
}

func (c *colorFlag) Type() string { return "when" }

var _ pflag.Value = (*colorFlag)(nil)

// addCommonFlags registers the flags every top-level command shares.
func addCommonFlags(c *cobra.Command) {
	c.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	c.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	c.PersistentFlags().Var(&colorMode, "color", "colorize output: auto, always or never")
}

// setupCommon builds the logger and resolves color for a command run.
func setupCommon(cmd *cobra.Command) {
	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
		Out:     cmd.ErrOrStderr(),
		Err:     cmd.ErrOrStderr(),
	}
	applyColorMode(cmd.OutOrStdout())
	Logger.Debugf("Initializing %s command with verbose=%t, debug=%t, color=%s", cmd.Name(), verbose, debug, colorMode)
}

// applyColorMode resolves --color for output to w. In auto mode color is
// only ever turned off, so fatih/color's own checks such as TERM=dumb stand.
func applyColorMode(w io.Writer) {
	switch colorMode {
	case "always":
		ui.SetEnabled(true)
	case "never":
		ui.SetEnabled(false)
	default:
		if f, ok := w.(*os.File); !ok || !isTerminal(f) {
			ui.SetEnabled(false)
		}
	}
}

// resetCommonState resets the shared flag variables for testing.
func resetCommonState() {
	verbose = false
	debug = false
	colorMode = "auto"
	lookupEnv = os.LookupEnv
	isTerminal = utils.IsTerminal
}

// resetCobraFlagState clears the Changed marks on c's flags to prevent test pollution.
func resetCobraFlagState(c *cobra.Command) {
	reset := func(flag *pflag.Flag) { flag.Changed = false }
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
}
