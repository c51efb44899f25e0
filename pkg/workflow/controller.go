package workflow

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yasith-1/zentask-admin/pkg/models"
)

// Gateway is the settings backend surface the workflow needs. The HTTP
// client in pkg/api implements it; tests substitute a fake.
type Gateway interface {
	List(ctx context.Context, cat models.Category) ([]models.SettingRecord, error)
	Create(ctx context.Context, cat models.Category, payload map[string]any) (string, error)
	Update(ctx context.Context, cat models.Category, id int, payload map[string]any) (string, error)
	Remove(ctx context.Context, cat models.Category, id int) error
	GetOne(ctx context.Context, cat models.Category, id int) (*models.SettingRecord, error)
}

// Phase is the state of one category's save workflow.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

// ErrValidation is returned when a save is rejected locally, before any
// network call. The per-field messages live in the store's error map.
var ErrValidation = errors.New("validation failed")

// ValidationNotice is the generic banner shown alongside per-field
// validation errors.
const ValidationNotice = "Please fill in all required fields"

// SaveRequest is the submission produced by a successful local
// validation pass. The caller performs the gateway call (possibly on
// another goroutine) and reports back through FinishSave.
type SaveRequest struct {
	Category models.Category
	Payload  map[string]any
	EditID   int
	Update   bool
}

// Controller orchestrates the settings workflow of all three
// categories. Each category is an independent state machine; no
// cross-category ordering exists because the backend resources are
// disjoint.
type Controller struct {
	store    *Store
	sections *Sections
	gateway  Gateway
	pageSize int

	phases  map[models.Category]Phase
	editIDs map[models.Category]int // 0 = no active edit session
	lists   map[models.Category][]models.SettingRecord
	pages   map[models.Category]int
}

// NewController creates a workflow controller with empty drafts and the
// default section visibility.
func NewController(gateway Gateway, pageSize int) *Controller {
	c := &Controller{
		store:    NewStore(),
		sections: NewSections(),
		gateway:  gateway,
		pageSize: pageSize,
		phases:   make(map[models.Category]Phase),
		editIDs:  make(map[models.Category]int),
		lists:    make(map[models.Category][]models.SettingRecord),
		pages:    make(map[models.Category]int),
	}
	for _, cat := range models.Categories() {
		c.phases[cat] = PhaseIdle
	}
	return c
}

// Store exposes the field state store for form input wiring.
func (c *Controller) Store() *Store { return c.store }

// Sections exposes the accordion visibility state.
func (c *Controller) Sections() *Sections { return c.sections }

// Gateway exposes the backend client so UI commands can run the
// network round trip off the update loop and report back through
// FinishSave/FinishRemove/SetList.
func (c *Controller) Gateway() Gateway { return c.gateway }

// Phase returns the category's workflow phase. Terminal phases
// (Succeeded, Failed) persist until the next operation resets them.
func (c *Controller) Phase(cat models.Category) Phase { return c.phases[cat] }

// Editing returns the id of the record being edited, if an edit session
// is active.
func (c *Controller) Editing(cat models.Category) (int, bool) {
	id, ok := c.editIDs[cat]
	return id, ok
}

// PageSize returns the fixed saved-list page size.
func (c *Controller) PageSize() int { return c.pageSize }

// BeginSave validates the whole draft. When validation fails the phase
// moves to Failed and ErrValidation comes back without touching the
// network. Otherwise the phase moves to Submitting and the returned
// request describes the gateway call to perform.
func (c *Controller) BeginSave(cat models.Category) (*SaveRequest, error) {
	c.phases[cat] = PhaseValidating
	if errs := c.store.Validate(cat); errs.HasErrors() {
		c.phases[cat] = PhaseFailed
		return nil, ErrValidation
	}

	c.phases[cat] = PhaseSubmitting
	id, editing := c.editIDs[cat]
	return &SaveRequest{
		Category: cat,
		Payload:  buildPayload(cat, c.store.Draft(cat)),
		EditID:   id,
		Update:   editing,
	}, nil
}

// FinishSave records the outcome of the gateway call. On success the
// draft and error map are cleared and the edit session ends; the
// returned notice is the server message, or a fallback when the server
// sent none. On failure the draft is preserved so the user can correct
// and retry.
func (c *Controller) FinishSave(cat models.Category, serverMsg string, submitErr error) (string, error) {
	if submitErr != nil {
		c.phases[cat] = PhaseFailed
		return "", submitErr
	}

	c.phases[cat] = PhaseSucceeded
	c.store.ResetSection(cat)
	delete(c.editIDs, cat)

	if serverMsg == "" {
		serverMsg = fmt.Sprintf("%s saved successfully", cat.Title())
	}
	return serverMsg, nil
}

// Save runs the full save workflow synchronously: validate, submit
// create-or-update, reset the draft, refresh the saved list. The TUI
// uses BeginSave/FinishSave instead so the network round trip can run
// as a command.
func (c *Controller) Save(ctx context.Context, cat models.Category) (string, error) {
	req, err := c.BeginSave(cat)
	if err != nil {
		return "", err
	}

	var serverMsg string
	var submitErr error
	if req.Update {
		serverMsg, submitErr = c.gateway.Update(ctx, cat, req.EditID, req.Payload)
	} else {
		serverMsg, submitErr = c.gateway.Create(ctx, cat, req.Payload)
	}

	notice, err := c.FinishSave(cat, serverMsg, submitErr)
	if err != nil {
		return "", err
	}

	// Refresh is best-effort: the pane tolerates a stale list until the
	// next successful refetch.
	_ = c.RefreshList(ctx, cat)
	return notice, nil
}

// Clear unconditionally resets the category's draft and error map, ends
// any edit session, and never touches the network.
func (c *Controller) Clear(cat models.Category) {
	c.phases[cat] = PhaseIdle
	delete(c.editIDs, cat)
	c.store.ResetSection(cat)
}

// EditBegin fetches a record and loads it into the draft for editing.
func (c *Controller) EditBegin(ctx context.Context, cat models.Category, id int) error {
	record, err := c.gateway.GetOne(ctx, cat, id)
	if err != nil {
		return err
	}
	c.ApplyEdit(cat, record)
	return nil
}

// ApplyEdit starts an edit session from an already-fetched record: the
// draft is pre-filled (secrets excluded), the section opens if it was
// collapsed, and the id is remembered so the next save updates instead
// of creating.
func (c *Controller) ApplyEdit(cat models.Category, record *models.SettingRecord) {
	c.phases[cat] = PhaseIdle
	c.store.LoadSection(cat, record)
	c.sections.Expand(cat)
	c.editIDs[cat] = record.ID
}

// Remove deletes a record and refreshes the list. When the deleted
// record was the one being edited, the draft is cleared too.
func (c *Controller) Remove(ctx context.Context, cat models.Category, id int) error {
	if err := c.gateway.Remove(ctx, cat, id); err != nil {
		return err
	}
	c.FinishRemove(cat, id)
	_ = c.RefreshList(ctx, cat)
	return nil
}

// FinishRemove applies the local consequences of a successful delete.
func (c *Controller) FinishRemove(cat models.Category, id int) {
	if editID, ok := c.editIDs[cat]; ok && editID == id {
		c.Clear(cat)
	}
}

// RefreshList refetches the category's full collection. The list shown
// is always replaced wholesale, never patched in place.
func (c *Controller) RefreshList(ctx context.Context, cat models.Category) error {
	records, err := c.gateway.List(ctx, cat)
	if err != nil {
		return err
	}
	c.SetList(cat, records)
	return nil
}

// SetList replaces the cached list and clamps the page index so it
// never points past the last page after the list shrinks.
func (c *Controller) SetList(cat models.Category, records []models.SettingRecord) {
	c.lists[cat] = records
	c.pages[cat] = ClampPage(c.pages[cat], len(records), c.pageSize)
}

// List returns the most recently fetched collection.
func (c *Controller) List(cat models.Category) []models.SettingRecord {
	return c.lists[cat]
}

// Page returns the current page index.
func (c *Controller) Page(cat models.Category) int { return c.pages[cat] }

// SetPage moves to a page, clamped to the valid range.
func (c *Controller) SetPage(cat models.Category, page int) {
	c.pages[cat] = ClampPage(page, len(c.lists[cat]), c.pageSize)
}

// NextPage advances one page, clamped.
func (c *Controller) NextPage(cat models.Category) {
	c.SetPage(cat, c.pages[cat]+1)
}

// PrevPage goes back one page, clamped.
func (c *Controller) PrevPage(cat models.Category) {
	c.SetPage(cat, c.pages[cat]-1)
}

// PageItems returns the records of the current page.
func (c *Controller) PageItems(cat models.Category) []models.SettingRecord {
	return Paginate(c.lists[cat], c.pages[cat], c.pageSize)
}

// TotalPages returns the page count of the category's list.
func (c *Controller) TotalPages(cat models.Category) int {
	return TotalPages(len(c.lists[cat]), c.pageSize)
}

// buildPayload turns a draft into the JSON body the backend expects.
// Port fields are coerced to integers; everything else travels as the
// string the user typed.
func buildPayload(cat models.Category, draft Draft) map[string]any {
	payload := make(map[string]any)
	for _, spec := range models.FieldsFor(cat) {
		value := draft[spec.Name]
		if spec.Kind == models.KindPort {
			n, _ := strconv.Atoi(strings.TrimSpace(value))
			payload[spec.Name] = n
			continue
		}
		payload[spec.Name] = value
	}
	return payload
}
