// Package styles provides shared lipgloss styles for subm output.
//
// This package centralizes color definitions and styling to ensure
// visual consistency across all output (tagged lines, section headers,
// prompt, and progress components).
package styles

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Primary colors used throughout the output
var (
	// Success is used for checkmarks and positive outcomes (green)
	Success lipgloss.TerminalColor = lipgloss.Color("82")

	// Warning is used for warning messages (yellow)
	Warning lipgloss.TerminalColor = lipgloss.Color("214")

	// Error is used for error messages (red)
	Error lipgloss.TerminalColor = lipgloss.Color("196")

	// Info is used for informational text (cyan/teal)
	Info lipgloss.TerminalColor = lipgloss.Color("62")

	// Muted is used for secondary text (gray)
	Muted lipgloss.TerminalColor = lipgloss.Color("240")
)

// Common styles
var (
	// InfoTag renders the [INFO] prefix
	InfoTag = lipgloss.NewStyle().Foreground(Info).Bold(true)

	// WarningTag renders the [WARNING] prefix
	WarningTag = lipgloss.NewStyle().Foreground(Warning).Bold(true)

	// ErrorTag renders the [ERROR] prefix
	ErrorTag = lipgloss.NewStyle().Foreground(Error).Bold(true)

	// Header renders section headers
	Header = lipgloss.NewStyle().Bold(true).Underline(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
)

// ColorMode controls whether styled output carries ANSI colors.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Setup configures the global lipgloss color profile.
// In auto mode colors are enabled only when stdout is a terminal.
func Setup(mode ColorMode) {
	switch mode {
	case ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	}
}
