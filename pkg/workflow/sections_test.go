package workflow

import (
	"testing"

	"github.com/yasith-1/zentask-admin/pkg/models"
)

func TestInitialVisibility(t *testing.T) {
	s := NewSections()

	if !s.Expanded(models.CategoryDatabase) {
		t.Error("Database section should start expanded")
	}
	if s.Expanded(models.CategoryEmail) {
		t.Error("Email section should start collapsed")
	}
	if s.Expanded(models.CategorySMS) {
		t.Error("SMS section should start collapsed")
	}
}

func TestToggleIsIndependent(t *testing.T) {
	s := NewSections()

	s.Toggle(models.CategoryEmail)
	s.Toggle(models.CategorySMS)

	// No accordion exclusivity: all three may be open at once.
	if !s.Expanded(models.CategoryDatabase) || !s.Expanded(models.CategoryEmail) || !s.Expanded(models.CategorySMS) {
		t.Error("Toggling one section must not collapse the others")
	}

	s.Toggle(models.CategoryEmail)
	if s.Expanded(models.CategoryEmail) {
		t.Error("Second toggle should collapse the section again")
	}
	if !s.Expanded(models.CategorySMS) {
		t.Error("Collapsing email must not affect sms")
	}
}

func TestExpandIsIdempotent(t *testing.T) {
	s := NewSections()

	s.Expand(models.CategoryEmail)
	s.Expand(models.CategoryEmail)

	if !s.Expanded(models.CategoryEmail) {
		t.Error("Expand should open the section")
	}
}
