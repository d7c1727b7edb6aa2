package view

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/kogulmurugaiah/expensetrack/internal/accounttype"
	"github.com/kogulmurugaiah/expensetrack/internal/income"
	"github.com/kogulmurugaiah/expensetrack/internal/incomesource"
)

type incomeState int

const (
	incomeStateList incomeState = iota
	incomeStateEditing
	incomeStateConfirmDelete
)

// incomeItem wraps an income record to implement list.Item.
type incomeItem struct {
	in *income.Income
}

func (i incomeItem) Title() string {
	source := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("[%s]", i.in.SourceName))

	return fmt.Sprintf("%s  %8s  %s", FormatDate(i.in.Date), FormatAmount(i.in.Amount), source)
}

func (i incomeItem) Description() string {
	if i.in.Description == "" {
		return i.in.AccountType
	}

	return fmt.Sprintf("%s  %s", i.in.AccountType, i.in.Description)
}

func (i incomeItem) FilterValue() string { return i.in.SourceName }

type IncomeModel struct {
	CommonModel
	incomeService  *income.Service
	sourceService  *incomesource.Service
	accountService *accounttype.Service
	userID         uuid.UUID

	state    incomeState
	list     list.Model
	form     *huh.Form
	records  []*income.Income
	selected *income.Income

	sources      []*incomesource.Source
	accountTypes []string

	year  int
	month time.Month

	// fetchSeq stamps every load; stale results are dropped.
	fetchSeq int

	loading bool
	status  string

	formDate    string
	formAmount  string
	formSource  string
	formAccount string
	formDesc    string
	confirmDel  bool
}

func NewIncomeModel(
	incomeSvc *income.Service,
	sourceSvc *incomesource.Service,
	accountSvc *accounttype.Service,
	userID uuid.UUID,
) IncomeModel {
	l := list.New([]list.Item{}, incomeItemDelegate{}, 0, 0)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	now := time.Now()

	return IncomeModel{
		incomeService:  incomeSvc,
		sourceService:  sourceSvc,
		accountService: accountSvc,
		userID:         userID,
		list:           l,
		year:           now.Year(),
		month:          now.Month(),
		loading:        true,
	}
}

func (m IncomeModel) Title() string { return "Browse Income" }

func (m IncomeModel) ShortHelp() string {
	switch m.state {
	case incomeStateList:
		return "Esc: back | m/M: month | Enter: edit | d: delete | /: filter"
	case incomeStateEditing:
		return "Esc: cancel | Enter/Tab: navigate form"
	case incomeStateConfirmDelete:
		return "Esc: cancel"
	}

	return ""
}

func (m IncomeModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m IncomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadIncomeMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}

		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.records = msg.records
		m.sources = msg.sources
		m.accountTypes = msg.accountTypes
		m.refreshListItems()

		m.status = ""
		if len(msg.records) == 0 {
			m.status = "No income this month."
		}

		return m, nil

	case mutateIncomeResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			m.state = incomeStateList

			return m, nil
		}

		m.status = msg.status
		m.state = incomeStateList

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil
	}

	switch m.state {
	case incomeStateList:
		return m.updateList(msg)
	case incomeStateEditing, incomeStateConfirmDelete:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m IncomeModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		filtering := m.list.FilterState() == list.Filtering

		switch {
		case keyMsg.Type == tea.KeyEsc && !filtering:
			return m, Back

		case keyMsg.Type == tea.KeyEnter && !filtering:
			return m.startEditing()

		case keyMsg.String() == "m" && !filtering:
			m.year, m.month = prevMonth(m.year, m.month)
			m.fetchSeq++
			m.loading = true

			return m, m.loadCmd()

		case keyMsg.String() == "M" && !filtering:
			m.year, m.month = nextMonth(m.year, m.month)
			m.fetchSeq++
			m.loading = true

			return m, m.loadCmd()

		case keyMsg.String() == "d" && !filtering:
			return m.startDelete()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m IncomeModel) startEditing() (tea.Model, tea.Cmd) {
	selected, ok := m.list.SelectedItem().(incomeItem)
	if !ok {
		return m, nil
	}

	m.selected = selected.in
	m.formDate = FormatDate(selected.in.Date)
	m.formAmount = FormatAmount(selected.in.Amount)
	m.formSource = selected.in.SourceID.String()
	m.formAccount = selected.in.AccountType
	m.formDesc = selected.in.Description

	m.buildEditForm()
	m.state = incomeStateEditing

	return m, m.form.Init()
}

func (m *IncomeModel) buildEditForm() {
	sourceOptions := make([]huh.Option[string], 0, len(m.sources))
	for _, src := range m.sources {
		sourceOptions = append(sourceOptions, huh.NewOption(src.Name, src.ID.String()))
	}

	accountOptions := make([]huh.Option[string], 0, len(m.accountTypes))
	for _, at := range m.accountTypes {
		accountOptions = append(accountOptions, huh.NewOption(at, at))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("date").
				Title("Date (YYYY-MM-DD)").
				Value(&m.formDate).
				Validate(func(s string) error {
					_, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
					return err
				}),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Value(&m.formAmount).
				Validate(func(s string) error {
					_, err := ParseAmount(s)
					return err
				}),

			huh.NewSelect[string]().
				Key("source").
				Title("Income Source").
				Options(sourceOptions...).
				Value(&m.formSource),

			huh.NewSelect[string]().
				Key("account").
				Title("Account Type").
				Options(accountOptions...).
				Value(&m.formAccount),

			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDesc),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m IncomeModel) startDelete() (tea.Model, tea.Cmd) {
	selected, ok := m.list.SelectedItem().(incomeItem)
	if !ok {
		return m, nil
	}

	m.selected = selected.in
	m.confirmDel = false

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title(fmt.Sprintf("Delete income of %s on %s?",
					FormatAmount(selected.in.Amount), FormatDate(selected.in.Date))).
				Affirmative("Delete").
				Negative("Keep").
				Value(&m.confirmDel),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = incomeStateConfirmDelete

	return m, m.form.Init()
}

func (m IncomeModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = incomeStateList
			m.form = nil

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == incomeStateConfirmDelete {
		if !m.confirmDel {
			m.state = incomeStateList
			return m, nil
		}

		return m, m.deleteCmd()
	}

	return m, m.saveCmd()
}

func (m IncomeModel) View() string {
	header := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("Income - %s %d", m.month, m.year),
	)

	switch m.state {
	case incomeStateList:
		if m.loading {
			return lipgloss.NewStyle().Padding(2).Render("Loading income...")
		}

		statusLine := ""
		if m.status != "" {
			statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n"
		}

		return lipgloss.NewStyle().Padding(1).Render(
			header + "\n" + statusLine + m.list.View(),
		)

	case incomeStateEditing, incomeStateConfirmDelete:
		if m.form == nil {
			return ""
		}

		return lipgloss.NewStyle().Padding(1).Render(header + "\n\n" + m.form.View())
	}

	return ""
}

func (m *IncomeModel) refreshListItems() {
	items := make([]list.Item, len(m.records))
	for i, in := range m.records {
		items[i] = incomeItem{in: in}
	}

	m.list.SetItems(items)
}

// Messages

type loadIncomeMsg struct {
	seq          int
	records      []*income.Income
	sources      []*incomesource.Source
	accountTypes []string
	err          error
}

func (m IncomeModel) loadCmd() tea.Cmd {
	seq := m.fetchSeq
	incomeSvc := m.incomeService
	sourceSvc := m.sourceService
	accountSvc := m.accountService
	userID := m.userID
	year, month := m.year, m.month

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		records, err := incomeSvc.ListMonth(ctx, userID, year, month)
		if err != nil {
			return loadIncomeMsg{seq: seq, err: err}
		}

		sources, err := sourceSvc.List(ctx, userID)
		if err != nil {
			return loadIncomeMsg{seq: seq, err: err}
		}

		accountTypes, err := accountSvc.List(ctx, userID)
		if err != nil {
			return loadIncomeMsg{seq: seq, err: err}
		}

		return loadIncomeMsg{
			seq:          seq,
			records:      records,
			sources:      sources,
			accountTypes: accountTypes,
		}
	}
}

type mutateIncomeResultMsg struct {
	status string
	err    error
}

func (m IncomeModel) saveCmd() tea.Cmd {
	svc := m.incomeService
	userID := m.userID
	id := m.selected.ID

	date, _ := time.Parse(time.DateOnly, strings.TrimSpace(m.formDate))
	amount, _ := ParseAmount(m.formAmount)
	account := m.formAccount
	desc := m.formDesc

	var sourceID *uuid.UUID
	if parsed, err := uuid.Parse(m.formSource); err == nil {
		sourceID = &parsed
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := svc.Update(ctx, userID, id, income.UpdateParams{
			Date:        &date,
			Amount:      &amount,
			SourceID:    sourceID,
			AccountType: &account,
			Description: &desc,
		})
		if err != nil {
			return mutateIncomeResultMsg{err: err}
		}

		return mutateIncomeResultMsg{status: "Saved."}
	}
}

func (m IncomeModel) deleteCmd() tea.Cmd {
	svc := m.incomeService
	userID := m.userID
	id := m.selected.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := svc.Delete(ctx, userID, id); err != nil {
			return mutateIncomeResultMsg{err: err}
		}

		return mutateIncomeResultMsg{status: "Deleted."}
	}
}

// incomeItemDelegate renders items in the list.
type incomeItemDelegate struct{}

func (d incomeItemDelegate) Height() int                             { return 2 }
func (d incomeItemDelegate) Spacing() int                            { return 0 }
func (d incomeItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d incomeItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(incomeItem)
	if !ok {
		return
	}

	title := i.Title()
	if index == m.Index() {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("> " + title)
	}

	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintf(w, "    %s\n", lipgloss.NewStyle().Faint(true).Render(i.Description()))
}
