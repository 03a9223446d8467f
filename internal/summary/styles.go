package summary

import (


	"github.com/CosmoTheDev/threatreport/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.Color("#14B8A6") // teal
	yellow = lipgloss.Color("#F59E0B")
	red    = lipgloss.Color("#EF4444")
	blue   = lipgloss.Color("#38BDF8")
	slate  = lipgloss.Color("#94A3B8")
	ink    = lipgloss.Color("#E5E7EB")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ink).
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeft(true).
			BorderTop(false).
			BorderRight(false).
			BorderBottom(false).
			BorderForeground(accent).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	labelStyle   = lipgloss.NewStyle().Width(10)
	dimStyle     = lipgloss.NewStyle().Foreground(slate)
	codeStyle    = lipgloss.NewStyle().Foreground(blue)

	criticalStyle = lipgloss.NewStyle().Bold(true).Foreground(red)
	highStyle     = lipgloss.NewStyle().Bold(true).Foreground(yellow)
	mediumStyle   = lipgloss.NewStyle().Foreground(blue)
	lowStyle      = lipgloss.NewStyle().Foreground(slate)
)

func severityStyle(sev models.SeverityLevel) lipgloss.Style {
	switch sev {
	case models.SeverityCritical:
		return criticalStyle
	case models.SeverityHigh:
		return highStyle
	case models.SeverityMedium:
		return mediumStyle
	default:
		return lowStyle
	}
}
