package tui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yasith-1/zentask-admin/pkg/models"
	"github.com/yasith-1/zentask-admin/pkg/workflow"
)

// Messages produced by the network commands below. State mutation
// always happens in Update when these arrive, never in the command
// goroutines themselves.

type listLoadedMsg struct {
	cat     models.Category
	records []models.SettingRecord
	err     error
}

type saveResultMsg struct {
	cat       models.Category
	serverMsg string
	err       error
}

type editLoadedMsg struct {
	cat    models.Category
	record *models.SettingRecord
	err    error
}

type removeResultMsg struct {
	cat models.Category
	id  int
	err error
}

type clipboardMsg struct {
	err error
}

func loadListCmd(gw workflow.Gateway, cat models.Category) tea.Cmd {
	return func() tea.Msg {
		records, err := gw.List(context.Background(), cat)
		return listLoadedMsg{cat: cat, records: records, err: err}
	}
}

func submitCmd(gw workflow.Gateway, req *workflow.SaveRequest) tea.Cmd {
	return func() tea.Msg {
		var serverMsg string
		var err error
		if req.Update {
			serverMsg, err = gw.Update(context.Background(), req.Category, req.EditID, req.Payload)
		} else {
			serverMsg, err = gw.Create(context.Background(), req.Category, req.Payload)
		}
		return saveResultMsg{cat: req.Category, serverMsg: serverMsg, err: err}
	}
}

func fetchRecordCmd(gw workflow.Gateway, cat models.Category, id int) tea.Cmd {
	return func() tea.Msg {
		record, err := gw.GetOne(context.Background(), cat, id)
		return editLoadedMsg{cat: cat, record: record, err: err}
	}
}

func removeCmd(gw workflow.Gateway, cat models.Category, id int) tea.Cmd {
	return func() tea.Msg {
		err := gw.Remove(context.Background(), cat, id)
		return removeResultMsg{cat: cat, id: id, err: err}
	}
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{err: clipboard.WriteAll(text)}
	}
}

func statusCmd(format string, args ...any) tea.Cmd {
	msg := StatusMsg(fmt.Sprintf(format, args...))
	return func() tea.Msg { return msg }
}
