// Package workflow implements the settings-configuration workflow: the
// per-category form drafts and validation state, section visibility,
// saved-list paging, and the save/clear/edit/delete orchestration
// against the settings API.
package workflow

import (
	"github.com/yasith-1/zentask-admin/pkg/models"
	"github.com/yasith-1/zentask-admin/pkg/validate"
)

// Draft holds the in-progress form values of one category, keyed by
// field name. Every keystroke lands here unvalidated; validation is an
// explicit, separate step.
type Draft map[string]string

// ErrorMap maps field names to validation messages. An absent or empty
// entry means the field is currently valid.
type ErrorMap map[string]string

// HasErrors reports whether any field carries a message.
func (e ErrorMap) HasErrors() bool {
	for _, msg := range e {
		if msg != "" {
			return true
		}
	}
	return false
}

// Store keeps the draft and error map of every category. Drafts are
// independent across categories and live only for the edit session.
type Store struct {
	drafts map[models.Category]Draft
	errors map[models.Category]ErrorMap
}

// NewStore creates a store with empty drafts for all categories.
func NewStore() *Store {
	s := &Store{
		drafts: make(map[models.Category]Draft),
		errors: make(map[models.Category]ErrorMap),
	}
	for _, cat := range models.Categories() {
		s.drafts[cat] = Draft{}
		s.errors[cat] = ErrorMap{}
	}
	return s
}

// Field returns the current draft value of a field.
func (s *Store) Field(cat models.Category, name string) string {
	return s.drafts[cat][name]
}

// SetField overwrites a field value unconditionally. No validation runs
// here: controlled-input semantics, every keystroke is kept.
func (s *Store) SetField(cat models.Category, name, value string) {
	s.drafts[cat][name] = value
}

// TouchField validates a single field against its spec and records the
// verdict in the error map. Called when a field loses focus. Returns
// the message ("" when valid).
func (s *Store) TouchField(cat models.Category, name string) string {
	for _, spec := range models.FieldsFor(cat) {
		if spec.Name == name {
			msg := validate.Field(spec, s.drafts[cat][name])
			s.errors[cat][name] = msg
			return msg
		}
	}
	return ""
}

// Validate runs the full rule set over every field of the category and
// replaces the error map with the result.
func (s *Store) Validate(cat models.Category) ErrorMap {
	errs := ErrorMap{}
	for _, spec := range models.FieldsFor(cat) {
		if msg := validate.Field(spec, s.drafts[cat][spec.Name]); msg != "" {
			errs[spec.Name] = msg
		}
	}
	s.errors[cat] = errs
	return errs
}

// Error returns the recorded validation message of a field.
func (s *Store) Error(cat models.Category, name string) string {
	return s.errors[cat][name]
}

// Errors returns the category's error map.
func (s *Store) Errors(cat models.Category) ErrorMap {
	return s.errors[cat]
}

// Draft returns a copy of the category's current draft.
func (s *Store) Draft(cat models.Category) Draft {
	out := make(Draft, len(s.drafts[cat]))
	for k, v := range s.drafts[cat] {
		out[k] = v
	}
	return out
}

// ResetSection returns every field of the category to its empty default
// and clears the error map. Called after a successful save, an explicit
// clear, or a cancelled edit.
func (s *Store) ResetSection(cat models.Category) {
	s.drafts[cat] = Draft{}
	s.errors[cat] = ErrorMap{}
}

// LoadSection pre-fills the draft from a saved record for an edit
// session. Secret fields stay empty and the error map is left alone;
// errors only surface after the user interacts.
func (s *Store) LoadSection(cat models.Category, record *models.SettingRecord) {
	draft := Draft{}
	for _, spec := range models.FieldsFor(cat) {
		if spec.Secret {
			continue
		}
		draft[spec.Name] = record.Values[spec.Name]
	}
	s.drafts[cat] = draft
	s.errors[cat] = ErrorMap{}
}
