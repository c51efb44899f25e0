package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationModel handles inline yes/no prompts, used before
// destructive operations like deleting a saved setting.
type ConfirmationModel struct {
	active      bool
	message     string
	destructive bool
	onConfirm   func() tea.Cmd
	onCancel    func() tea.Cmd
}

// NewConfirmation creates an inactive confirmation model.
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the prompt. onConfirm/onCancel run when the user
// answers; either may be nil.
func (m *ConfirmationModel) Show(message string, destructive bool, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.message = message
	m.destructive = destructive
	m.onConfirm = onConfirm
	m.onCancel = onCancel
}

// Active returns whether the prompt is currently shown.
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events while the prompt is active.
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
		return nil

	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
		return nil
	}

	return nil
}

// View renders the prompt as a single line.
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	yesStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	noStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	if m.destructive {
		yesStyle, noStyle = noStyle, yesStyle
	}

	options := fmt.Sprintf("%s / %s", yesStyle.Render("y"), noStyle.Render("n"))
	return fmt.Sprintf("%s %s", m.message, options)
}
