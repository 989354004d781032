// Package console holds the interactive-shell building blocks: input
// validation, prompt loops and styled rendering of fleet views.
package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/core/model"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	styleBold    = lipgloss.NewStyle().Bold(true)
	styleGood    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleBad     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleOK      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleDueSoon = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleOverdue = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Title renders a heading.
func Title(s string) string { return styleTitle.Render(s) }

// Bold renders emphasized text.
func Bold(s string) string { return styleBold.Render(s) }

// Good renders a success message.
func Good(s string) string { return styleGood.Render(s) }

// Warn renders a cautionary message.
func Warn(s string) string { return styleWarn.Render(s) }

// Bad renders an error message.
func Bad(s string) string { return styleBad.Render(s) }

// StatusStyle returns the style for a maintenance band.
func StatusStyle(s model.Status) lipgloss.Style {
	switch s {
	case model.StatusOverdue:
		return styleOverdue
	case model.StatusDueSoon:
		return styleDueSoon
	default:
		return styleOK
	}
}

// Banner renders the start-up banner.
func Banner() string {
	return Title(strings.Join([]string{
		"=============================================",
		"               FleetGuardian",
		"   Intelligent Bus Fleet Maintenance Tracker",
		"=============================================",
	}, "\n"))
}
