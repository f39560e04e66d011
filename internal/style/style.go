// Package style provides consistent terminal styling using Lipgloss.
package style

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Success style for positive outcomes (green)
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#7FD962"}).
		Bold(true)

	// Warning style for cautionary messages (amber)
	Warning = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#B26A00", Dark: "#FFB454"}).
		Bold(true)

	// Error style for failures (red)
	Error = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#F07178"}).
		Bold(true)

	// Dim style for secondary information (gray)
	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C7680"})

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().
		Bold(true)

	SuccessPrefix = Success.Render("✓")
	WarningPrefix = Warning.Render("⚠")
	ErrorPrefix   = Error.Render("✗")
)

// Fprintf writes a message with the given prefix, formatted like fmt.Fprintf,
// followed by a newline.
func Fprintf(w io.Writer, prefix, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}
