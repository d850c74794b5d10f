// Package logger provides leveled console logging for kpv commands.
//
// Verbosity is controlled by two persistent flags on the root command:
//
//   - --verbose: shows info messages
//   - --debug: shows everything, including debug details and errors as they
//     are returned
//
// Warnings are always printed to stderr. Otherwise the logger is silent
// without flags; user-facing results are printed by the commands themselves.
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Saving %s under %s", source, key)
//	return log.ErrorfAndReturn("failed to save: %w", err)
package logger
