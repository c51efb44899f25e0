package validate

import (
	"testing"

	"github.com/yasith-1/zentask-admin/pkg/models"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		label     string
		wantError bool
	}{
		{"empty value", "", "Host", true},
		{"whitespace only", "   ", "Host", true},
		{"tab and newline", "\t\n", "Username", true},
		{"present value", "localhost", "Host", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Required(tt.value, tt.label)
			if (got != "") != tt.wantError {
				t.Errorf("Required(%q, %q) = %q, wantError=%v", tt.value, tt.label, got, tt.wantError)
			}
		})
	}

	if got := Required("", "Host"); got != "Host is required" {
		t.Errorf("Expected %q, got %q", "Host is required", got)
	}
}

func TestPort(t *testing.T) {
	tests := []struct {
		value     string
		wantError bool
	}{
		{"1", false},
		{"65535", false},
		{"5432", false},
		{"587", false},
		{"0", true},
		{"65536", true},
		{"-1", true},
		{"abc", true},
		{"", true},
		{"80.5", true},
	}

	for _, tt := range tests {
		got := Port(tt.value)
		if (got != "") != tt.wantError {
			t.Errorf("Port(%q) = %q, wantError=%v", tt.value, got, tt.wantError)
		}
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		value     string
		wantError bool
	}{
		{"a@b.c", false},
		{"noreply@myapp.com", false},
		{"first.last@sub.domain.org", false},
		{"abc", true},
		{"a@b", true},
		{"", true},
		{"a b@c.d", true},
		{"a@b c.d", true},
	}

	for _, tt := range tests {
		got := Email(tt.value)
		if (got != "") != tt.wantError {
			t.Errorf("Email(%q) = %q, wantError=%v", tt.value, got, tt.wantError)
		}
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		value     string
		wantError bool
	}{
		{"12345", true},
		{"123456", false},
		{"twelvechars!", false},
		{"1234567890123", true},
		{"", true},
	}

	for _, tt := range tests {
		got := Password(tt.value)
		if (got != "") != tt.wantError {
			t.Errorf("Password(%q) = %q, wantError=%v", tt.value, got, tt.wantError)
		}
	}
}

func TestPhoneNumber(t *testing.T) {
	tests := []struct {
		value     string
		wantError bool
	}{
		{"+1234567890", false},
		{"1234567890", false},
		{"+123456789012345", false},
		{"abc", true},
		{"", true},
		{"0123", true},
		{"+0123", true},
		{"+1234567890123456", true},
	}

	for _, tt := range tests {
		got := PhoneNumber(tt.value)
		if (got != "") != tt.wantError {
			t.Errorf("PhoneNumber(%q) = %q, wantError=%v", tt.value, got, tt.wantError)
		}
	}
}

func TestFieldRequiredVsOptional(t *testing.T) {
	required := models.FieldSpec{Name: "fromEmail", Label: "From Email", Required: true, Kind: models.KindEmail}
	optional := models.FieldSpec{Name: "toEmail", Label: "To Email", Kind: models.KindEmail}

	if got := Field(required, ""); got != "From Email is required" {
		t.Errorf("Expected required error, got %q", got)
	}
	if got := Field(optional, ""); got != "" {
		t.Errorf("Optional empty field should pass, got %q", got)
	}
	if got := Field(optional, "not-an-email"); got == "" {
		t.Error("Optional field with a value should still be format-checked")
	}
	if got := Field(required, "a@b.c"); got != "" {
		t.Errorf("Valid value should pass, got %q", got)
	}
}

func TestFieldKindDispatch(t *testing.T) {
	tests := []struct {
		name      string
		spec      models.FieldSpec
		value     string
		wantError bool
	}{
		{"port ok", models.FieldSpec{Label: "Port", Required: true, Kind: models.KindPort}, "5432", false},
		{"port bad", models.FieldSpec{Label: "Port", Required: true, Kind: models.KindPort}, "notaport", true},
		{"password ok", models.FieldSpec{Label: "Password", Required: true, Kind: models.KindPassword}, "secret1", false},
		{"password short", models.FieldSpec{Label: "Password", Required: true, Kind: models.KindPassword}, "abc", true},
		{"phone ok", models.FieldSpec{Label: "From Number", Required: true, Kind: models.KindPhone}, "+1234567890", false},
		{"text any", models.FieldSpec{Label: "Provider", Required: true, Kind: models.KindText}, "twilio", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Field(tt.spec, tt.value)
			if (got != "") != tt.wantError {
				t.Errorf("Field(%v, %q) = %q, wantError=%v", tt.spec.Label, tt.value, got, tt.wantError)
			}
		})
	}
}
