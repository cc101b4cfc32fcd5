package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Severity band styles
	Critical   lipgloss.Style
	Important  lipgloss.Style
	Moderate   lipgloss.Style
	Minor      lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Panel     lipgloss.Style
	Label     lipgloss.Style
	Dim       lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconCritical string
	IconWarning  string
	IconHint     string
	IconInfo     string
	IconSuccess  string
}

// NewStyles creates a new Styles instance
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.Critical = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))   // Red
		s.Important = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Yellow
		s.Moderate = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))  // Cyan
		s.Minor = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))     // Blue
		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))   // Green
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))   // Yellow

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Panel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("11")).
			Padding(0, 2)
		s.Label = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		s.Dim = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

		s.IconCritical = "✗"
		s.IconWarning = "⚠"
		s.IconHint = "💡"
		s.IconInfo = "ℹ"
		s.IconSuccess = "✓"
	} else {
		s.Critical = lipgloss.NewStyle()
		s.Important = lipgloss.NewStyle()
		s.Moderate = lipgloss.NewStyle()
		s.Minor = lipgloss.NewStyle()
		s.Success = lipgloss.NewStyle()
		s.Warning = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.Panel = lipgloss.NewStyle()
		s.Label = lipgloss.NewStyle()
		s.Dim = lipgloss.NewStyle()

		s.IconCritical = "ERROR:"
		s.IconWarning = "WARN:"
		s.IconHint = "HINT:"
		s.IconInfo = "INFO:"
		s.IconSuccess = "OK:"
	}

	return s
}

// SeverityStyle returns the style for a 1-10 severity score
func (s *Styles) SeverityStyle(severity int) lipgloss.Style {
	switch {
	case severity >= 9:
		return s.Critical
	case severity >= 7:
		return s.Important
	case severity >= 5:
		return s.Moderate
	default:
		return s.Minor
	}
}

// SeverityIcon returns the icon for a 1-10 severity score
func (s *Styles) SeverityIcon(severity int) string {
	switch {
	case severity >= 9:
		return s.IconCritical
	case severity >= 7:
		return s.IconWarning
	case severity >= 5:
		return s.IconHint
	default:
		return s.IconInfo
	}
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}
