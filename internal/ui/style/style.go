// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)

// Success renders msg with the check icon in the success color.
func Success(msg string) string {
	return lipgloss.NewStyle().Foreground(Green).Render(Check + " " + msg)
}

// Muted renders msg in the secondary text color.
func Muted(msg string) string {
	return lipgloss.NewStyle().Foreground(Slate).Render(msg)
}
