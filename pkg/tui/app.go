package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yasith-1/zentask-admin/pkg/models"
	"github.com/yasith-1/zentask-admin/pkg/workflow"
)

type sessionState int

const (
	dashboardView sessionState = iota
	settingsPageView
	rolesPageView
	signupPageView
)

// App is the root model: a sidebar-style navigation over four pages,
// mirroring the admin panel shell (header, nav, status bar).
type App struct {
	state     sessionState
	dashboard *DashboardModel
	settings  *SettingsModel
	roles     *RolesModel
	signup    *SignupModel
	width     int
	height    int
	statusMsg string
}

// NewApp builds the console around a workflow controller and the
// loaded configuration.
func NewApp(controller *workflow.Controller, cfg *models.Settings) *App {
	return &App{
		state:     dashboardView,
		dashboard: NewDashboardModel(controller, cfg),
		settings:  NewSettingsModel(controller, cfg),
		roles:     NewRolesModel(),
		signup:    NewSignupModel(),
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.dashboard.Init(), a.settings.Init())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.dashboard.SetSize(msg.Width, msg.Height)
		a.settings.SetSize(msg.Width, msg.Height)
		a.roles.SetSize(msg.Width, msg.Height)
		a.signup.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		// Global keybindings
		switch msg.Type {
		case tea.KeyCtrlC:
			return a, tea.Quit
		case tea.KeyF1:
			a.state = dashboardView
			return a, a.dashboard.Init()
		case tea.KeyF2:
			a.state = settingsPageView
			return a, a.settings.Refresh()
		case tea.KeyF3:
			a.state = rolesPageView
			return a, nil
		case tea.KeyF4:
			a.state = signupPageView
			return a, nil
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case switchViewMsg:
		a.state = msg.view
		return a, nil
	}

	// Route updates to the active page
	var cmd tea.Cmd
	switch a.state {
	case dashboardView:
		cmd = a.dashboard.Update(msg)
	case settingsPageView:
		cmd = a.settings.Update(msg)
	case rolesPageView:
		cmd = a.roles.Update(msg)
	case signupPageView:
		cmd = a.signup.Update(msg)
	}

	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	switch a.state {
	case dashboardView:
		content = a.dashboard.View()
	case settingsPageView:
		content = a.settings.View()
	case rolesPageView:
		content = a.roles.View()
	case signupPageView:
		content = a.signup.View()
	default:
		content = "Unknown view"
	}

	nav := renderNav(a.width, a.state)
	body := lipgloss.JoinVertical(lipgloss.Top, nav, content)

	if a.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)
		body = lipgloss.JoinVertical(lipgloss.Top, body, statusStyle.Render(a.statusMsg))
	}

	return body
}

// renderNav draws the sidebar items as a horizontal tab strip; a
// terminal gives the vertical space to the forms instead.
func renderNav(width int, active sessionState) string {
	items := []struct {
		state sessionState
		label string
	}{
		{dashboardView, "F1 Dashboard"},
		{settingsPageView, "F2 Application Settings"},
		{rolesPageView, "F3 Roles"},
		{signupPageView, "F4 Signup"},
	}

	activeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("62")).
		Padding(0, 1).
		Bold(true)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("243")).
		Padding(0, 1)

	var rendered []string
	for _, item := range items {
		if item.state == active {
			rendered = append(rendered, activeStyle.Render(item.label))
		} else {
			rendered = append(rendered, inactiveStyle.Render(item.label))
		}
	}
	return lipgloss.NewStyle().Width(width).Render(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
}

// Messages for communication between views
type StatusMsg string

type switchViewMsg struct {
	view sessionState
}
