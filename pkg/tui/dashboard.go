package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yasith-1/zentask-admin/pkg/models"
	"github.com/yasith-1/zentask-admin/pkg/workflow"
)

// DashboardModel is the landing page: a greeting, the backend the
// console is pointed at, and per-category counts of saved settings.
type DashboardModel struct {
	controller *workflow.Controller
	cfg        *models.Settings

	loaded  map[models.Category]bool
	loadErr map[models.Category]error

	width  int
	height int
}

func NewDashboardModel(controller *workflow.Controller, cfg *models.Settings) *DashboardModel {
	return &DashboardModel{
		controller: controller,
		cfg:        cfg,
		loaded:     make(map[models.Category]bool),
		loadErr:    make(map[models.Category]error),
	}
}

func (m *DashboardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init fetches the saved lists so the counts are live.
func (m *DashboardModel) Init() tea.Cmd {
	gw := m.controller.Gateway()
	cmds := make([]tea.Cmd, 0, 3)
	for _, cat := range models.Categories() {
		cmds = append(cmds, loadListCmd(gw, cat))
	}
	return tea.Batch(cmds...)
}

func (m *DashboardModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.loaded[msg.cat] = true
		m.loadErr[msg.cat] = msg.err
		if msg.err == nil {
			m.controller.SetList(msg.cat, msg.records)
		}
	case tea.KeyMsg:
		if msg.String() == "r" {
			return m.Init()
		}
	}
	return nil
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(renderHeader(m.width, "Dashboard"))
	b.WriteString("\n")

	greetStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))
	b.WriteString(greetStyle.Render(fmt.Sprintf("Welcome back, %s", m.cfg.UI.AdminName)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Backend: " + m.cfg.API.BaseURL))
	b.WriteString("\n\n")

	b.WriteString(listTitleStyle.Render("Saved Settings"))
	b.WriteString("\n")
	for _, cat := range models.Categories() {
		b.WriteString(m.renderCount(cat))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("F2 settings · F3 roles · F4 signup · r refresh · ctrl+c quit"))
	return b.String()
}

func (m *DashboardModel) renderCount(cat models.Category) string {
	label := fmt.Sprintf("  %-18s", cat.Title())
	switch {
	case m.loadErr[cat] != nil:
		return label + noticeErrStyle.Render("unavailable")
	case !m.loaded[cat]:
		return label + mutedStyle.Render("loading...")
	default:
		return label + fmt.Sprintf("%d", len(m.controller.List(cat)))
	}
}
