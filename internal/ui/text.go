package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...any) string {
	return f.render(fmt.Sprint(a...))
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...any) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	// https://no-color.org/
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

// Status symbols printed in front of command results.
const (
	CheckMark = "✓"
	CrossMark = "✗"
	Arrow     = "→"
)

// Semantic formatters for different types of CLI output.
var (
	// Code formats runnable commands. Yellow, or `backticks` without color.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path formats file or directory paths. Yellow, undecorated without color.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Key formats vault key names. Cyan, or 'single quotes' without color.
	Key = Formatter{color.New(color.FgCyan), "'", "'"}

	// Success formats success indicators. Green.
	Success = Formatter{color.New(color.FgGreen), "", ""}

	// Error formats error indicators and messages. Red.
	Error = Formatter{color.New(color.FgRed), "", ""}

	// Warning formats confirmations and warnings. Yellow.
	Warning = Formatter{color.New(color.FgYellow), "", ""}

	// Info formats hints. Cyan.
	Info = Formatter{color.New(color.FgCyan), "", ""}

	// Muted formats secondary text. Gray, or (parentheses) without color.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)
