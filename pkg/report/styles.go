// pkg/report/styles.go

package report

import "github.com/charmbracelet/lipgloss"

// Shared palette for rendered reports and the dashboard shell.
var (
	ColorPrimary = lipgloss.Color("#00ffff") // cyan
	ColorSuccess = lipgloss.Color("#00ff00") // green
	ColorWarning = lipgloss.Color("#ffaa00") // orange
	ColorError   = lipgloss.Color("#ff0000") // red
	ColorInfo    = lipgloss.Color("#0099ff") // blue
	ColorMuted   = lipgloss.Color("#666666") // gray
	ColorBorder  = lipgloss.Color("#3d5a80") // medium blue
)

// Styles used across report rendering.
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorInfo).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Width(14)

	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	MutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
)

// ScoreStyle picks the color matching a composite score band.
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 80:
		return SuccessStyle
	case score >= 40:
		return WarningStyle
	default:
		return ErrorStyle
	}
}
