// Package style provides shared brand colors, icons and text styles for the
// logger and the CLI.
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

// Text styles used by command output.
var (
	Label   = lipgloss.NewStyle().Foreground(Slate)
	Value   = lipgloss.NewStyle().Foreground(Iris).Bold(true)
	Success = lipgloss.NewStyle().Foreground(Green)
	Muted   = lipgloss.NewStyle().Foreground(Slate).Faint(true)
)
