package tui

import (
	"strings"
	"testing"
)

func setSignupValues(m *SignupModel, name, email, phone, password, repeat string) {
	m.inputs[signupName].SetValue(name)
	m.inputs[signupEmail].SetValue(email)
	m.inputs[signupTelephone].SetValue(phone)
	m.inputs[signupPassword].SetValue(password)
	m.inputs[signupRepeat].SetValue(repeat)
}

func TestSignupValidateField(t *testing.T) {
	tests := []struct {
		name    string
		field   signupField
		setup   func(m *SignupModel)
		wantMsg string
	}{
		{
			name:    "empty name is required",
			field:   signupName,
			setup:   func(m *SignupModel) {},
			wantMsg: "Name is required",
		},
		{
			name:  "invalid email",
			field: signupEmail,
			setup: func(m *SignupModel) {
				m.inputs[signupEmail].SetValue("not-an-email")
			},
			wantMsg: "Enter a valid email address",
		},
		{
			name:  "invalid telephone",
			field: signupTelephone,
			setup: func(m *SignupModel) {
				m.inputs[signupTelephone].SetValue("abc")
			},
			wantMsg: "Enter a valid phone number",
		},
		{
			name:  "short password",
			field: signupPassword,
			setup: func(m *SignupModel) {
				m.inputs[signupPassword].SetValue("12345")
			},
			wantMsg: "Password must be 6-12 characters",
		},
		{
			name:  "repeat mismatch",
			field: signupRepeat,
			setup: func(m *SignupModel) {
				m.inputs[signupPassword].SetValue("secret1")
				m.inputs[signupRepeat].SetValue("secret2")
			},
			wantMsg: "Passwords do not match",
		},
		{
			name:  "repeat matches",
			field: signupRepeat,
			setup: func(m *SignupModel) {
				m.inputs[signupPassword].SetValue("secret1")
				m.inputs[signupRepeat].SetValue("secret1")
			},
			wantMsg: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewSignupModel()
			tt.setup(m)

			if got := m.validateField(tt.field); got != tt.wantMsg {
				t.Errorf("validateField(%v) = %q, want %q", tt.field, got, tt.wantMsg)
			}
		})
	}
}

func TestSignupSubmitSuccess(t *testing.T) {
	m := NewSignupModel()
	setSignupValues(m, "Jane Doe", "jane@example.com", "+1234567890", "secret1", "secret1")

	m.submit()

	if m.failed {
		t.Fatal("submit with valid input should not fail")
	}
	if !strings.Contains(m.notice, "Jane Doe") {
		t.Errorf("notice = %q, want it to name the account", m.notice)
	}
	for f := signupField(0); f < signupFieldCount; f++ {
		if m.inputs[f].Value() != "" {
			t.Errorf("field %s not cleared after submit", signupLabels[f])
		}
	}
}

func TestSignupSubmitRejectsInvalidForm(t *testing.T) {
	m := NewSignupModel()
	setSignupValues(m, "Jane Doe", "bad-email", "+1234567890", "secret1", "secret1")

	m.submit()

	if !m.failed {
		t.Fatal("submit with an invalid email should fail")
	}
	if m.errors[signupEmail] == "" {
		t.Error("expected an error on the email field")
	}
	if got := m.inputs[signupName].Value(); got != "Jane Doe" {
		t.Errorf("draft should be preserved on failure, name = %q", got)
	}
}
