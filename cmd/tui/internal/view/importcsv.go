package view

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/kogulmurugaiah/expensetrack/internal/accounttype"
	"github.com/kogulmurugaiah/expensetrack/internal/importer"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateAccountSelect importState = iota
	importStateFilePick
	importStateImporting
	importStateResult
)

type ImportModel struct {
	CommonModel
	importService  *importer.Service
	accountService *accounttype.Service
	userID         uuid.UUID

	state      importState
	filePicker filepicker.Model

	accountTypes    []string
	accountCursor   int
	selectedAccount string

	status string
	err    error
}

func NewImportModel(importSvc *importer.Service, accountSvc *accounttype.Service, userID uuid.UUID) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		importService:  importSvc,
		accountService: accountSvc,
		userID:         userID,
		filePicker:     fp,
	}
}

func (m ImportModel) Title() string { return "Import Statement" }

func (m ImportModel) ShortHelp() string {
	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return tea.Batch(m.filePicker.Init(), m.loadAccountTypesCmd())
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == importStateAccountSelect {
			return m.updateAccountSelect(msg)
		}

	case accountTypesMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.accountTypes = msg.accountTypes

		return m, nil

	case importResultMsg:
		m.state = importStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.status = fmt.Sprintf("Imported %d rows, skipped %d.", msg.result.Imported, msg.result.Skipped)

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		m.status = fmt.Sprintf("Importing from %s...", path)

		return m, m.importCmd(path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateFilePick:
		m.state = importStateAccountSelect
		return m, nil
	case importStateResult:
		m.state = importStateAccountSelect
		m.err = nil
		m.status = ""

		return m, nil
	}

	return m, Back
}

func (m ImportModel) updateAccountSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.accountCursor > 0 {
			m.accountCursor--
		}
	case "down", "j":
		if m.accountCursor < len(m.accountTypes)-1 {
			m.accountCursor++
		}
	case "enter":
		if len(m.accountTypes) == 0 {
			return m, nil
		}

		m.selectedAccount = m.accountTypes[m.accountCursor]
		m.state = importStateFilePick
	}

	return m, nil
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateAccountSelect:
		var lines string
		for i, at := range m.accountTypes {
			cursor := "  "
			if i == m.accountCursor {
				cursor = "> "
			}

			lines += cursor + at + "\n"
		}

		return lipgloss.NewStyle().Padding(1).Render(
			"Book imported rows against which account type?\n\n" + lines +
				"\n" + lipgloss.NewStyle().Faint(true).Render(m.ShortHelp()),
		)

	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Account: %s\n\nPick a statement CSV:\n\n%s", m.selectedAccount, m.filePicker.View()),
		)

	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)

	case importStateResult:
		return lipgloss.NewStyle().Padding(2).Render(
			m.status + "\n\n" + lipgloss.NewStyle().Faint(true).Render("Esc: back"),
		)
	}

	return ""
}

// Messages

type accountTypesMsg struct {
	accountTypes []string
	err          error
}

func (m ImportModel) loadAccountTypesCmd() tea.Cmd {
	svc := m.accountService
	userID := m.userID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		accountTypes, err := svc.List(ctx, userID)

		return accountTypesMsg{accountTypes: accountTypes, err: err}
	}
}

type importResultMsg struct {
	result *importer.Result
	err    error
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	svc := m.importService
	userID := m.userID
	accountType := m.selectedAccount

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		f, err := os.Open(path)
		if err != nil {
			return importResultMsg{err: err}
		}
		defer f.Close()

		result, err := svc.Import(ctx, userID, f, accountType)

		return importResultMsg{result: result, err: err}
	}
}
