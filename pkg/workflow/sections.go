package workflow

import "github.com/yasith-1/zentask-admin/pkg/models"

// Sections tracks which accordion sections are expanded. Sections
// toggle independently: there is no mutual exclusion and any number may
// be open at once. The state is a UI-session concern, never persisted.
type Sections struct {
	expanded map[models.Category]bool
}

// NewSections returns the initial visibility: database open, the rest
// collapsed.
func NewSections() *Sections {
	return &Sections{
		expanded: map[models.Category]bool{
			models.CategoryDatabase: true,
			models.CategoryEmail:    false,
			models.CategorySMS:      false,
		},
	}
}

// Toggle flips the section of one category only.
func (s *Sections) Toggle(cat models.Category) {
	s.expanded[cat] = !s.expanded[cat]
}

// Expand opens a section regardless of its current state. Used when an
// edit begins on a collapsed section.
func (s *Sections) Expand(cat models.Category) {
	s.expanded[cat] = true
}

// Expanded reports whether a section is open.
func (s *Sections) Expanded(cat models.Category) bool {
	return s.expanded[cat]
}
