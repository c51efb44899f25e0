package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yasith-1/zentask-admin/pkg/api"
	"github.com/yasith-1/zentask-admin/pkg/models"
	"github.com/yasith-1/zentask-admin/pkg/workflow"
)

// SettingsModel drives the Application Settings page: three collapsible
// category sections, each holding a credentials form and a paginated
// list of the saved records of that category. Form state lives in the
// workflow controller; this model owns only presentation concerns
// (text inputs, focus, the delete prompt).
type SettingsModel struct {
	controller *workflow.Controller
	cfg        *models.Settings

	cats   []models.Category
	inputs map[models.Category][]textinput.Model
	reveal map[models.Category]bool

	activeCat  int
	focusField int
	listFocus  bool
	selected   map[models.Category]int

	saving  map[models.Category]bool
	notices map[models.Category]string
	failed  map[models.Category]bool

	spin    spinner.Model
	confirm *ConfirmationModel

	width  int
	height int
}

// NewSettingsModel builds the settings page around a shared workflow
// controller. The section named by the config opens first; the others
// start collapsed.
func NewSettingsModel(controller *workflow.Controller, cfg *models.Settings) *SettingsModel {
	m := &SettingsModel{
		controller: controller,
		cfg:        cfg,
		cats:       models.Categories(),
		inputs:     make(map[models.Category][]textinput.Model),
		reveal:     make(map[models.Category]bool),
		selected:   make(map[models.Category]int),
		saving:     make(map[models.Category]bool),
		notices:    make(map[models.Category]string),
		failed:     make(map[models.Category]bool),
		confirm:    NewConfirmation(),
	}

	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot
	m.spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	for _, cat := range m.cats {
		specs := models.FieldsFor(cat)
		inputs := make([]textinput.Model, len(specs))
		for i, spec := range specs {
			ti := textinput.New()
			ti.Placeholder = spec.Placeholder
			ti.CharLimit = 128
			ti.Width = 40
			if spec.Secret {
				ti.EchoMode = textinput.EchoPassword
				ti.EchoCharacter = '•'
			}
			inputs[i] = ti
		}
		m.inputs[cat] = inputs
	}

	if cat, err := models.ParseCategory(cfg.UI.DefaultSection); err == nil {
		controller.Sections().Expand(cat)
		for i, c := range m.cats {
			if c == cat {
				m.activeCat = i
			}
		}
	}

	m.focusInput()
	return m
}

// SetSize updates the available terminal dimensions.
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init fetches the saved lists of every category.
func (m *SettingsModel) Init() tea.Cmd {
	return m.Refresh()
}

// Refresh refetches all three saved lists.
func (m *SettingsModel) Refresh() tea.Cmd {
	gw := m.controller.Gateway()
	cmds := make([]tea.Cmd, 0, len(m.cats))
	for _, cat := range m.cats {
		cmds = append(cmds, loadListCmd(gw, cat))
	}
	return tea.Batch(cmds...)
}

func (m *SettingsModel) currentCat() models.Category {
	return m.cats[m.activeCat]
}

func (m *SettingsModel) fields() []models.FieldSpec {
	return models.FieldsFor(m.currentCat())
}

// focusInput gives keyboard focus to the current field, provided the
// section is expanded and the form pane has focus.
func (m *SettingsModel) focusInput() {
	cat := m.currentCat()
	if m.listFocus || !m.controller.Sections().Expanded(cat) {
		return
	}
	inputs := m.inputs[cat]
	if m.focusField >= 0 && m.focusField < len(inputs) {
		inputs[m.focusField].Focus()
	}
}

// blurInput drops focus from the current field and records its
// validation verdict, mirroring the blur behavior of the web form.
func (m *SettingsModel) blurInput() {
	cat := m.currentCat()
	inputs := m.inputs[cat]
	if m.focusField >= 0 && m.focusField < len(inputs) {
		inputs[m.focusField].Blur()
		m.controller.Store().TouchField(cat, m.fields()[m.focusField].Name)
	}
}

func (m *SettingsModel) moveField(delta int) {
	m.blurInput()
	n := len(m.fields())
	m.focusField = ((m.focusField+delta)%n + n) % n
	m.focusInput()
}

func (m *SettingsModel) moveSection(delta int) {
	m.blurInput()
	n := len(m.cats)
	m.activeCat = ((m.activeCat+delta)%n + n) % n
	m.focusField = 0
	m.focusInput()
}

// syncSection rewrites the section's text inputs from the draft. Used
// after an edit load or a clear, when the draft changed underneath the
// inputs.
func (m *SettingsModel) syncSection(cat models.Category) {
	store := m.controller.Store()
	inputs := m.inputs[cat]
	for i, spec := range models.FieldsFor(cat) {
		inputs[i].SetValue(store.Field(cat, spec.Name))
	}
}

// Update handles messages routed to the settings page.
func (m *SettingsModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		for _, busy := range m.saving {
			if busy {
				var cmd tea.Cmd
				m.spin, cmd = m.spin.Update(msg)
				return cmd
			}
		}
		return nil

	case listLoadedMsg:
		if msg.err != nil {
			m.notices[msg.cat] = fmt.Sprintf("Failed to load saved settings: %v", msg.err)
			m.failed[msg.cat] = true
			return nil
		}
		m.controller.SetList(msg.cat, msg.records)
		m.clampSelection(msg.cat)
		return nil

	case saveResultMsg:
		return m.handleSaveResult(msg)

	case editLoadedMsg:
		if msg.err != nil {
			m.notices[msg.cat] = fmt.Sprintf("Failed to load record: %v", msg.err)
			m.failed[msg.cat] = true
			return nil
		}
		m.controller.ApplyEdit(msg.cat, msg.record)
		m.syncSection(msg.cat)
		m.notices[msg.cat] = ""
		m.listFocus = false
		for i, c := range m.cats {
			if c == msg.cat {
				m.activeCat = i
			}
		}
		m.focusField = 0
		m.focusInput()
		return nil

	case removeResultMsg:
		if msg.err != nil {
			m.notices[msg.cat] = fmt.Sprintf("Failed to delete: %v", msg.err)
			m.failed[msg.cat] = true
			return nil
		}
		m.controller.FinishRemove(msg.cat, msg.id)
		m.syncSection(msg.cat)
		m.notices[msg.cat] = "Setting deleted"
		m.failed[msg.cat] = false
		return loadListCmd(m.controller.Gateway(), msg.cat)

	case clipboardMsg:
		if msg.err != nil {
			return statusCmd("Clipboard copy failed: %v", msg.err)
		}
		return statusCmd("Copied to clipboard")

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return nil
}

func (m *SettingsModel) handleSaveResult(msg saveResultMsg) tea.Cmd {
	m.saving[msg.cat] = false
	notice, err := m.controller.FinishSave(msg.cat, msg.serverMsg, msg.err)
	if err != nil {
		if serverMsg := api.ServerMessage(err); serverMsg != "" {
			m.notices[msg.cat] = serverMsg
		} else {
			m.notices[msg.cat] = fmt.Sprintf("Save failed: %v", err)
		}
		m.failed[msg.cat] = true
		return nil
	}

	m.syncSection(msg.cat)
	m.notices[msg.cat] = notice
	m.failed[msg.cat] = false
	return loadListCmd(m.controller.Gateway(), msg.cat)
}

func (m *SettingsModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.confirm.Active() {
		return m.confirm.Update(msg)
	}

	cat := m.currentCat()

	switch msg.String() {
	case "ctrl+t":
		m.blurInput()
		m.controller.Sections().Toggle(cat)
		if m.controller.Sections().Expanded(cat) {
			m.focusInput()
		}
		return nil

	case "ctrl+n":
		m.moveSection(1)
		return nil

	case "ctrl+p":
		m.moveSection(-1)
		return nil

	case "ctrl+s":
		return m.beginSave(cat)

	case "ctrl+x":
		m.controller.Clear(cat)
		m.syncSection(cat)
		m.notices[cat] = ""
		m.failed[cat] = false
		return nil

	case "ctrl+g":
		m.toggleReveal(cat)
		return nil

	case "ctrl+l":
		if m.listFocus {
			m.listFocus = false
			m.focusInput()
		} else {
			m.blurInput()
			m.listFocus = true
		}
		return nil

	case "esc":
		if _, editing := m.controller.Editing(cat); editing {
			m.controller.Clear(cat)
			m.syncSection(cat)
			m.notices[cat] = "Edit cancelled"
			m.failed[cat] = false
		} else if m.listFocus {
			m.listFocus = false
			m.focusInput()
		}
		return nil
	}

	if m.listFocus {
		return m.handleListKey(msg, cat)
	}
	return m.handleFormKey(msg, cat)
}

func (m *SettingsModel) handleFormKey(msg tea.KeyMsg, cat models.Category) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		m.moveField(1)
		return nil
	case "shift+tab", "up":
		m.moveField(-1)
		return nil
	case "enter":
		if m.focusField == len(m.fields())-1 {
			return m.beginSave(cat)
		}
		m.moveField(1)
		return nil
	}

	if !m.controller.Sections().Expanded(cat) {
		return nil
	}

	inputs := m.inputs[cat]
	if m.focusField < 0 || m.focusField >= len(inputs) {
		return nil
	}

	var cmd tea.Cmd
	inputs[m.focusField], cmd = inputs[m.focusField].Update(msg)
	m.controller.Store().SetField(cat, m.fields()[m.focusField].Name, inputs[m.focusField].Value())
	return cmd
}

func (m *SettingsModel) handleListKey(msg tea.KeyMsg, cat models.Category) tea.Cmd {
	items := m.controller.PageItems(cat)

	switch msg.String() {
	case "left", "h":
		m.controller.PrevPage(cat)
		m.clampSelection(cat)
		return nil

	case "right", "l":
		m.controller.NextPage(cat)
		m.clampSelection(cat)
		return nil

	case "up", "k":
		if m.selected[cat] > 0 {
			m.selected[cat]--
		}
		return nil

	case "down", "j":
		if m.selected[cat] < len(items)-1 {
			m.selected[cat]++
		}
		return nil

	case "r":
		return loadListCmd(m.controller.Gateway(), cat)

	case "e":
		if record, ok := m.selectedRecord(cat); ok {
			return fetchRecordCmd(m.controller.Gateway(), cat, record.ID)
		}
		return nil

	case "c":
		if record, ok := m.selectedRecord(cat); ok {
			return copyCmd(record.Summary(cat))
		}
		return nil

	case "d":
		record, ok := m.selectedRecord(cat)
		if !ok {
			return nil
		}
		gw := m.controller.Gateway()
		id := record.ID
		m.confirm.Show(
			fmt.Sprintf("Delete %s?", record.Summary(cat)),
			true,
			func() tea.Cmd { return removeCmd(gw, cat, id) },
			nil,
		)
		return nil
	}

	return nil
}

func (m *SettingsModel) selectedRecord(cat models.Category) (models.SettingRecord, bool) {
	items := m.controller.PageItems(cat)
	idx := m.selected[cat]
	if idx < 0 || idx >= len(items) {
		return models.SettingRecord{}, false
	}
	return items[idx], true
}

func (m *SettingsModel) clampSelection(cat models.Category) {
	n := len(m.controller.PageItems(cat))
	if n == 0 {
		m.selected[cat] = 0
		return
	}
	if m.selected[cat] >= n {
		m.selected[cat] = n - 1
	}
}

// beginSave validates the draft and, when it passes, kicks off the
// submit as a command so the network round trip never blocks Update.
func (m *SettingsModel) beginSave(cat models.Category) tea.Cmd {
	m.blurInput()
	req, err := m.controller.BeginSave(cat)
	if err != nil {
		m.notices[cat] = workflow.ValidationNotice
		m.failed[cat] = true
		m.focusInput()
		return nil
	}

	m.saving[cat] = true
	m.notices[cat] = ""
	m.failed[cat] = false
	m.focusInput()
	return tea.Batch(m.spin.Tick, submitCmd(m.controller.Gateway(), req))
}

func (m *SettingsModel) toggleReveal(cat models.Category) {
	m.reveal[cat] = !m.reveal[cat]
	inputs := m.inputs[cat]
	for i, spec := range models.FieldsFor(cat) {
		if !spec.Secret {
			continue
		}
		if m.reveal[cat] {
			inputs[i].EchoMode = textinput.EchoNormal
		} else {
			inputs[i].EchoMode = textinput.EchoPassword
		}
	}
}
