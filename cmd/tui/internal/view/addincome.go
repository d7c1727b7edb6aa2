package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/kogulmurugaiah/expensetrack/internal/accounttype"
	"github.com/kogulmurugaiah/expensetrack/internal/income"
	"github.com/kogulmurugaiah/expensetrack/internal/incomesource"
)

type addIncomeState int

const (
	addIncomeStateLoading addIncomeState = iota
	addIncomeStateForm
	addIncomeStateNewSource
	addIncomeStateSaving
)

type AddIncomeModel struct {
	CommonModel
	incomeService  *income.Service
	sourceService  *incomesource.Service
	accountService *accounttype.Service
	userID         uuid.UUID

	state  addIncomeState
	form   *huh.Form
	status string

	sources      []*incomesource.Source
	accountTypes []string

	formDate    string
	formAmount  string
	formSource  string
	formAccount string
	formDesc    string
	formNewName string
}

func NewAddIncomeModel(
	incomeSvc *income.Service,
	sourceSvc *incomesource.Service,
	accountSvc *accounttype.Service,
	userID uuid.UUID,
) AddIncomeModel {
	return AddIncomeModel{
		incomeService:  incomeSvc,
		sourceService:  sourceSvc,
		accountService: accountSvc,
		userID:         userID,
		formDate:       FormatDate(time.Now()),
	}
}

func (m AddIncomeModel) Title() string { return "Add Income" }

func (m AddIncomeModel) ShortHelp() string {
	return "Esc: back | Enter/Tab: navigate form"
}

func (m AddIncomeModel) Init() tea.Cmd {
	return m.loadRefDataCmd()
}

func (m AddIncomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			if m.state == addIncomeStateNewSource {
				m.state = addIncomeStateForm
				m.buildForm()

				return m, m.form.Init()
			}

			return m, Back
		}

	case incomeRefDataMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.sources = msg.sources
		m.accountTypes = msg.accountTypes
		m.state = addIncomeStateForm
		m.buildForm()

		return m, m.form.Init()

	case addSourceResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			m.state = addIncomeStateForm
			m.buildForm()

			return m, m.form.Init()
		}

		m.formNewName = ""
		// Preselect the source that was just created.
		m.formSource = msg.value
		m.state = addIncomeStateLoading

		return m, m.loadRefDataCmd()

	case saveIncomeResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			m.state = addIncomeStateForm
			m.buildForm()

			return m, m.form.Init()
		}

		m.status = "Saved."
		m.formDate = FormatDate(time.Now())
		m.formAmount = ""
		m.formDesc = ""
		m.state = addIncomeStateLoading

		return m, m.loadRefDataCmd()
	}

	if m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == addIncomeStateNewSource {
		return m, m.addSourceCmd(m.formNewName)
	}

	if m.formSource == newOptionValue {
		m.state = addIncomeStateNewSource
		m.formSource = ""
		m.buildNewSourceForm()

		return m, m.form.Init()
	}

	m.state = addIncomeStateSaving

	return m, m.saveCmd()
}

func (m *AddIncomeModel) buildForm() {
	sourceOptions := make([]huh.Option[string], 0, len(m.sources)+1)
	for _, src := range m.sources {
		sourceOptions = append(sourceOptions, huh.NewOption(src.Name, src.ID.String()))
	}

	sourceOptions = append(sourceOptions, huh.NewOption("+ Add new income source", newOptionValue))

	accountOptions := make([]huh.Option[string], 0, len(m.accountTypes))
	for _, at := range m.accountTypes {
		accountOptions = append(accountOptions, huh.NewOption(at, at))
	}

	if m.formAccount == "" && len(m.accountTypes) > 0 {
		m.formAccount = m.accountTypes[0]
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
				Title("Description (optional)").
				Value(&m.formDesc),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m *AddIncomeModel) buildNewSourceForm() {
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("New income source name").
				Value(&m.formNewName),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m AddIncomeModel) View() string {
	switch m.state {
	case addIncomeStateLoading:
		return lipgloss.NewStyle().Padding(2).Render("Loading...")
	case addIncomeStateSaving:
		return lipgloss.NewStyle().Padding(2).Render("Saving...")
	}

	statusLine := ""
	if m.status != "" {
		statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n\n"
	}

	return lipgloss.NewStyle().Padding(1).Render(statusLine + m.form.View())
}

// Messages

type incomeRefDataMsg struct {
	sources      []*incomesource.Source
	accountTypes []string
	err          error
}

func (m AddIncomeModel) loadRefDataCmd() tea.Cmd {
	sourceSvc := m.sourceService
	accountSvc := m.accountService
	userID := m.userID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		sources, err := sourceSvc.List(ctx, userID)
		if err != nil {
			return incomeRefDataMsg{err: err}
		}

		accountTypes, err := accountSvc.List(ctx, userID)
		if err != nil {
			return incomeRefDataMsg{err: err}
		}

		return incomeRefDataMsg{sources: sources, accountTypes: accountTypes}
	}
}

// addSourceResultMsg carries the created source's select value so the
// form can preselect it after the reload.
type addSourceResultMsg struct {
	value string
	err   error
}

func (m AddIncomeModel) addSourceCmd(name string) tea.Cmd {
	svc := m.sourceService
	userID := m.userID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		src, err := svc.Add(ctx, userID, name)
		if err != nil {
			return addSourceResultMsg{err: err}
		}

		return addSourceResultMsg{value: src.ID.String()}
	}
}

type saveIncomeResultMsg struct {
	err error
}

func (m AddIncomeModel) saveCmd() tea.Cmd {
	svc := m.incomeService
	userID := m.userID

	date, _ := time.Parse(time.DateOnly, strings.TrimSpace(m.formDate))
	amount, _ := ParseAmount(m.formAmount)
	sourceID, _ := uuid.Parse(m.formSource)

	params := income.CreateParams{
		Date:        date,
		Amount:      amount,
		SourceID:    sourceID,
		AccountType: m.formAccount,
		Description: m.formDesc,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := svc.Create(ctx, userID, params)

		return saveIncomeResultMsg{err: err}
	}
}
