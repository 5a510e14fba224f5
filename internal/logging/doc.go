// Package logger provides diagnostic logging for herald CLI commands.
//
// This is the CLI's own chatter about what it is doing, separate from the
// log lines it renders for users. Verbosity is controlled by two flags:
//
//   - --verbose: Shows info messages
//   - --debug: Shows all messages including debug details
//
// Warnings and errors are always shown.
//
// # Log Methods
//
//	Logger.Infof()           // Shown with --verbose or --debug
//	Logger.Debugf()          // Shown only with --debug
//	Logger.Warnf()           // Always shown
//	Logger.Errorf()          // Always shown
//	Logger.ErrorfAndReturn() // Errorf, then returns the message as an error
//
// # Usage
//
// Commands create a logger in their PersistentPreRun and pass it down:
//
//	log := Logger{Verbose: verbose, Debug: debug, Out: cmd.ErrOrStderr()}
//	log.Infof("Rendering %d values", len(args))
package logger
