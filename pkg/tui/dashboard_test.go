package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/yasith-1/zentask-admin/pkg/models"
	"github.com/yasith-1/zentask-admin/pkg/workflow"
)

func TestDashboardCounts(t *testing.T) {
	gw := &stubGateway{records: make(map[models.Category][]models.SettingRecord)}
	controller := workflow.NewController(gw, 2)
	m := NewDashboardModel(controller, models.DefaultSettings())
	m.SetSize(80, 24)

	if got := m.renderCount(models.CategoryDatabase); !strings.Contains(got, "loading") {
		t.Errorf("before any load, count line = %q, want a loading marker", got)
	}

	m.Update(listLoadedMsg{
		cat:     models.CategoryDatabase,
		records: []models.SettingRecord{dbRecord(1, "one"), dbRecord(2, "two")},
	})
	if got := m.renderCount(models.CategoryDatabase); !strings.Contains(got, "2") {
		t.Errorf("count line = %q, want the record count", got)
	}

	m.Update(listLoadedMsg{cat: models.CategorySMS, err: errors.New("boom")})
	if got := m.renderCount(models.CategorySMS); !strings.Contains(got, "unavailable") {
		t.Errorf("count line = %q, want unavailable", got)
	}
}
