// ABOUTME: Shared lipgloss styles for consistent CLI appearance
// ABOUTME: Defines colors and status styles used across commands

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary = lipgloss.Color("#7C3AED") // Purple
	Safe    = lipgloss.Color("#10B981") // Green
	Warning = lipgloss.Color("#F59E0B") // Amber
	Danger  = lipgloss.Color("#EF4444") // Red
	Muted   = lipgloss.Color("#6B7280") // Gray

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Label = lipgloss.NewStyle().
		Foreground(Muted)

	// Status indicators
	StatusOK = lipgloss.NewStyle().
			Foreground(Safe).
			Bold(true)

	StatusWarning = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	StatusCritical = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)
)

// ForWindowStatus returns the style matching a safe-window status string.
// Formation breakdown and a missing window render as critical; influx risk
// and anything unrecognized render as a warning.
func ForWindowStatus(status string) lipgloss.Style {
	switch status {
	case "ok":
		return StatusOK
	case "influx_risk":
		return StatusWarning
	case "breakdown_risk", "no_window":
		return StatusCritical
	default:
		return StatusWarning
	}
}
