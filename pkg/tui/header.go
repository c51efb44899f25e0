package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func renderHeader(width int, title string) string {
	logo := "ZENTASK ADMIN"

	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true)

	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	contentWidth := width - 2
	gap := contentWidth - lipgloss.Width(title) - lipgloss.Width(logo)
	if gap < 1 {
		gap = 1
	}

	headerContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleStyle.Render(title),
		lipgloss.NewStyle().Width(gap).Render(""),
		logoStyle.Render(logo),
	)

	return headerPadding.Render(headerContent)
}
