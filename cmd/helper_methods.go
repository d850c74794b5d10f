package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// spinner.FinalMSG does not need a trailing newline; cleanup adds one and
// prints it after the spinner line has been cleared. Leave FinalMSG empty on
// failure so only the returned error is reported.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ensureNewline(s.FinalMSG)
			// Cleared so s.Stop() doesn't print it as well.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

func ensureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// warnAudit reports an audit log failure without failing the command.
func warnAudit(err error) {
	if err != nil {
		Logger.Warnf("Audit log not written: %v", err)
	}
}

// warnPreferences reports an unreadable preferences file that a command could do without.
func warnPreferences(err error) {
	if err != nil {
		Logger.Warnf("Ignoring preferences, using defaults: %v", err)
	}
}

// displayPath renders a path relative to the working directory the way users type it.
func displayPath(path string) string {
	sep := string(filepath.Separator)
	if path == "" || filepath.IsAbs(path) || strings.HasPrefix(path, "."+sep) || strings.HasPrefix(path, ".."+sep) {
		return path
	}
	return "." + sep + path
}
