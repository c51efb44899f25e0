package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yasith-1/zentask-admin/pkg/models"
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("170"))

	sectionBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)

	activeBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("170")).
				Padding(0, 1)

	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	fieldErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	noticeOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	noticeErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	listTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	listItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	listSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("170")).
				Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	editBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)
)

// View renders the full settings page.
func (m *SettingsModel) View() string {
	var b strings.Builder

	b.WriteString(renderHeader(m.width, "Application Settings"))
	b.WriteString("\n")

	for i, cat := range m.cats {
		b.WriteString(m.renderSection(cat, i == m.activeCat))
		b.WriteString("\n")
	}

	if m.confirm.Active() {
		b.WriteString(m.confirm.View())
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp())
	return b.String()
}

func (m *SettingsModel) renderSection(cat models.Category, active bool) string {
	expanded := m.controller.Sections().Expanded(cat)

	marker := "▸"
	if expanded {
		marker = "▾"
	}

	header := fmt.Sprintf("%s %s", marker, cat.Title())
	if id, editing := m.controller.Editing(cat); editing {
		header += " " + editBadgeStyle.Render(fmt.Sprintf("(editing #%d)", id))
	}
	if m.saving[cat] {
		header += " " + m.spin.View()
	}

	var body strings.Builder
	body.WriteString(sectionHeaderStyle.Render(header))

	if expanded {
		body.WriteString("\n\n")
		body.WriteString(m.renderForm(cat))
		if notice := m.notices[cat]; notice != "" {
			body.WriteString("\n")
			if m.failed[cat] {
				body.WriteString(noticeErrStyle.Render(notice))
			} else {
				body.WriteString(noticeOKStyle.Render(notice))
			}
			body.WriteString("\n")
		}
		body.WriteString("\n")
		body.WriteString(m.renderSavedList(cat, active))
	}

	style := sectionBorderStyle
	if active {
		style = activeBorderStyle
	}
	width := m.width - 4
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(body.String())
}

func (m *SettingsModel) renderForm(cat models.Category) string {
	var b strings.Builder
	store := m.controller.Store()
	inputs := m.inputs[cat]

	for i, spec := range models.FieldsFor(cat) {
		label := spec.Label
		if spec.Required {
			label += " *"
		}
		b.WriteString(fieldLabelStyle.Render(label))
		b.WriteString("\n")
		b.WriteString(inputs[i].View())
		b.WriteString("\n")
		if msg := store.Error(cat, spec.Name); msg != "" {
			b.WriteString(fieldErrorStyle.Render(msg))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m *SettingsModel) renderSavedList(cat models.Category, active bool) string {
	var b strings.Builder
	b.WriteString(listTitleStyle.Render("Saved " + cat.Title()))
	b.WriteString("\n")

	items := m.controller.PageItems(cat)
	if len(items) == 0 {
		b.WriteString(mutedStyle.Render("No saved settings available."))
		return b.String()
	}

	showCursor := active && m.listFocus
	for i, record := range items {
		line := fmt.Sprintf("#%d  %s", record.ID, record.Summary(cat))
		if showCursor && i == m.selected[cat] {
			b.WriteString(listSelectedStyle.Render("› " + line))
		} else {
			b.WriteString(listItemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	total := m.controller.TotalPages(cat)
	if total > 1 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("Page %d of %d  ←/→", m.controller.Page(cat)+1, total)))
	}

	return b.String()
}

func (m *SettingsModel) renderHelp() string {
	if m.listFocus {
		return mutedStyle.Render("↑/↓ select · ←/→ page · e edit · d delete · c copy · r refresh · ctrl+l form · esc back")
	}
	return mutedStyle.Render("tab/↑/↓ fields · ctrl+s save · ctrl+x clear · ctrl+t collapse · ctrl+n/p section · ctrl+g reveal · ctrl+l list")
}
