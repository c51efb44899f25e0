package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yasith-1/zentask-admin/pkg/validate"
)

// signupField indexes into the signup form inputs.
type signupField int

const (
	signupName signupField = iota
	signupEmail
	signupTelephone
	signupPassword
	signupRepeat
	signupFieldCount
)

var signupLabels = [signupFieldCount]string{
	"Name",
	"Email",
	"Telephone",
	"Password",
	"Repeat Password",
}

// SignupModel is the account signup form. Validation is local only:
// the backend has no signup endpoint yet, so a valid submission just
// confirms and resets.
type SignupModel struct {
	inputs [signupFieldCount]textinput.Model
	errors [signupFieldCount]string
	focus  signupField
	notice string
	failed bool

	width  int
	height int
}

func NewSignupModel() *SignupModel {
	m := &SignupModel{}

	placeholders := [signupFieldCount]string{
		"Full name",
		"you@example.com",
		"+1234567890",
		"",
		"",
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 64
		ti.Width = 40
		if signupField(i) == signupPassword || signupField(i) == signupRepeat {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		m.inputs[i] = ti
	}
	m.inputs[signupName].Focus()

	return m
}

func (m *SignupModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *SignupModel) Init() tea.Cmd {
	return nil
}

func (m *SignupModel) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "tab", "down":
		m.moveFocus(1)
		return nil
	case "shift+tab", "up":
		m.moveFocus(-1)
		return nil
	case "enter":
		if m.focus == signupRepeat {
			m.submit()
			return nil
		}
		m.moveFocus(1)
		return nil
	case "ctrl+s":
		m.submit()
		return nil
	case "esc":
		m.reset()
		return nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(key)
	return cmd
}

func (m *SignupModel) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.errors[m.focus] = m.validateField(m.focus)

	n := int(signupFieldCount)
	m.focus = signupField(((int(m.focus)+delta)%n + n) % n)
	m.inputs[m.focus].Focus()
}

// validateField returns the message of a single field, "" when valid.
func (m *SignupModel) validateField(f signupField) string {
	value := m.inputs[f].Value()
	label := signupLabels[f]

	if msg := validate.Required(value, label); msg != "" {
		return msg
	}

	switch f {
	case signupEmail:
		return validate.Email(value)
	case signupTelephone:
		return validate.PhoneNumber(value)
	case signupPassword:
		return validate.Password(value)
	case signupRepeat:
		if value != m.inputs[signupPassword].Value() {
			return "Passwords do not match"
		}
	}
	return ""
}

// submit validates every field; when the form is clean it confirms and
// resets, otherwise the per-field messages stay on screen.
func (m *SignupModel) submit() {
	hasErrors := false
	for f := signupField(0); f < signupFieldCount; f++ {
		m.errors[f] = m.validateField(f)
		if m.errors[f] != "" {
			hasErrors = true
		}
	}

	if hasErrors {
		m.notice = "Please fix the highlighted fields"
		m.failed = true
		return
	}

	name := strings.TrimSpace(m.inputs[signupName].Value())
	m.reset()
	m.notice = "Account request submitted for " + name
	m.failed = false
}

func (m *SignupModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
		m.errors[i] = ""
	}
	m.focus = signupName
	m.inputs[signupName].Focus()
	m.notice = ""
	m.failed = false
}

func (m *SignupModel) View() string {
	var b strings.Builder

	b.WriteString(renderHeader(m.width, "Signup"))
	b.WriteString("\n")

	for f := signupField(0); f < signupFieldCount; f++ {
		b.WriteString(fieldLabelStyle.Render(signupLabels[f] + " *"))
		b.WriteString("\n")
		b.WriteString(m.inputs[f].View())
		b.WriteString("\n")
		if m.errors[f] != "" {
			b.WriteString(fieldErrorStyle.Render(m.errors[f]))
			b.WriteString("\n")
		}
	}

	if m.notice != "" {
		b.WriteString("\n")
		if m.failed {
			b.WriteString(noticeErrStyle.Render(m.notice))
		} else {
			b.WriteString(noticeOKStyle.Render(m.notice))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("tab/↑/↓ fields · enter/ctrl+s submit · esc reset"))
	return b.String()
}
