// Package styles provides shared lipgloss styles for terminal output.
//
// Colors are only applied when stdout is a terminal; piped output stays
// plain so the exit-code driven scripting surface remains parseable.
package styles

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Colors used for outcome rendering
var (
	// Success is used for linked and already-linked outcomes (green)
	Success lipgloss.TerminalColor = lipgloss.Color("82")

	// Warning is used for repairable states in read-only reports (orange)
	Warning lipgloss.TerminalColor = lipgloss.Color("214")

	// Error is used for failing outcomes (red)
	Error lipgloss.TerminalColor = lipgloss.Color("196")

	// Muted is used for secondary detail text (gray)
	Muted lipgloss.TerminalColor = lipgloss.Color("240")
)

// Common styles
var (
	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// WarningStyle applies the warning color
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
)

// colorEnabled tracks whether styles render with color.
var colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

// SetColorEnabled overrides terminal detection, mainly for tests.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether styled rendering is active.
func ColorEnabled() bool {
	return colorEnabled
}

// Render applies the style when color is enabled, otherwise returns the
// text unchanged.
func Render(style lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return style.Render(text)
}
