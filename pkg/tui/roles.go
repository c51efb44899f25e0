package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/yasith-1/zentask-admin/pkg/models"
)

// RolesModel renders the access roles page: the built-in role
// definitions with a live name filter. The data is static until the
// backend grows a roles resource.
type RolesModel struct {
	roles  []models.Role
	search textinput.Model

	width  int
	height int
}

func NewRolesModel() *RolesModel {
	search := textinput.New()
	search.Placeholder = "Filter roles by name"
	search.CharLimit = 64
	search.Width = 30
	search.Focus()

	return &RolesModel{
		roles:  models.DefaultRoles(),
		search: search,
	}
}

func (m *RolesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *RolesModel) Init() tea.Cmd {
	return nil
}

func (m *RolesModel) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		if key.String() == "esc" {
			m.search.SetValue("")
			return nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(key)
		return cmd
	}
	return nil
}

// filtered returns the roles whose name contains the search text,
// case-insensitively. An empty search matches everything.
func (m *RolesModel) filtered() []models.Role {
	query := strings.ToLower(strings.TrimSpace(m.search.Value()))
	if query == "" {
		return m.roles
	}
	var out []models.Role
	for _, role := range m.roles {
		if strings.Contains(strings.ToLower(role.Name), query) {
			out = append(out, role)
		}
	}
	return out
}

func (m *RolesModel) View() string {
	var b strings.Builder

	b.WriteString(renderHeader(m.width, "Roles"))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	matches := m.filtered()
	if len(matches) == 0 {
		b.WriteString(mutedStyle.Render("No roles match the filter."))
		b.WriteString("\n")
	}
	for _, role := range matches {
		b.WriteString(m.renderRole(role))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render("type to filter · esc clear · ctrl+c quit"))
	return b.String()
}

func (m *RolesModel) renderRole(role models.Role) string {
	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))
	permStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("243")).
		Background(lipgloss.Color("236")).
		Padding(0, 1)

	wrapWidth := m.width - 8
	if wrapWidth < 20 {
		wrapWidth = 20
	}

	var b strings.Builder
	b.WriteString(nameStyle.Render(role.Name))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d users · created %s", role.Users, role.CreatedOn)))
	b.WriteString("\n")
	b.WriteString(wordwrap.String(role.Description, wrapWidth))
	b.WriteString("\n")

	perms := make([]string, len(role.Permissions))
	for i, p := range role.Permissions {
		perms[i] = permStyle.Render(p)
	}
	b.WriteString(strings.Join(perms, " "))
	b.WriteString("\n")

	return sectionBorderStyle.Render(b.String())
}
