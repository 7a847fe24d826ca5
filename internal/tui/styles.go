package tui

import (
	"github.com/MKhiriev/go-trackspense/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	amountStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	toastBase = lipgloss.NewStyle().Padding(0, 1).Bold(true)
)

// toastStyle picks the colors of a notification line by severity.
func toastStyle(severity models.Severity) lipgloss.Style {
	switch severity {
	case models.SeveritySuccess:
		return toastBase.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10"))
	case models.SeverityWarning:
		return toastBase.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
	case models.SeverityError:
		return toastBase.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9"))
	default:
		return toastBase.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("12"))
	}
}
