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
	"github.com/kogulmurugaiah/expensetrack/internal/category"
	"github.com/kogulmurugaiah/expensetrack/internal/expense"
)

// newOptionValue marks the "add a new entry" choice in a select.
const newOptionValue = "__new__"

type addExpenseState int

const (
	addExpenseStateLoading addExpenseState = iota
	addExpenseStateForm
	addExpenseStateNewCategory
	addExpenseStateNewAccountType
	addExpenseStateSaving
)

type AddExpenseModel struct {
	CommonModel
	expenseService  *expense.Service
	categoryService *category.Service
	accountService  *accounttype.Service
	userID          uuid.UUID

	state  addExpenseState
	form   *huh.Form
	status string

	categories   []*category.Category
	accountTypes []string
	recent       []*expense.Expense

	formDate     string
	formItem     string
	formDesc     string
	formAmount   string
	formCategory string
	formAccount  string
	formNewName  string
}

func NewAddExpenseModel(
	expenseSvc *expense.Service,
	categorySvc *category.Service,
	accountSvc *accounttype.Service,
	userID uuid.UUID,
) AddExpenseModel {
	return AddExpenseModel{
		expenseService:  expenseSvc,
		categoryService: categorySvc,
		accountService:  accountSvc,
		userID:          userID,
		formDate:        FormatDate(time.Now()),
	}
}

func (m AddExpenseModel) Title() string { return "Add Expense" }

func (m AddExpenseModel) ShortHelp() string {
	return "Esc: back | Enter/Tab: navigate form"
}

func (m AddExpenseModel) Init() tea.Cmd {
	return m.loadRefDataCmd()
}

func (m AddExpenseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			if m.state == addExpenseStateNewCategory || m.state == addExpenseStateNewAccountType {
				m.state = addExpenseStateForm
				m.buildForm()

				return m, m.form.Init()
			}

			return m, Back
		}

	case expenseRefDataMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.categories = msg.categories
		m.accountTypes = msg.accountTypes
		m.recent = msg.recent
		m.state = addExpenseStateForm
		m.buildForm()

		return m, m.form.Init()

	case addNameResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			m.state = addExpenseStateForm
			m.buildForm()

			return m, m.form.Init()
		}

		m.formNewName = ""

		// Preselect the entry that was just created.
		switch m.state {
		case addExpenseStateNewCategory:
			m.formCategory = msg.value
		case addExpenseStateNewAccountType:
			m.formAccount = msg.value
		}

		m.state = addExpenseStateLoading

		return m, m.loadRefDataCmd()

	case saveExpenseResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			m.state = addExpenseStateForm
			m.buildForm()

			return m, m.form.Init()
		}

		m.status = "Saved."
		m.formDate = FormatDate(time.Now())
		m.formItem = ""
		m.formDesc = ""
		m.formAmount = ""
		m.state = addExpenseStateLoading

		return m, m.loadRefDataCmd()
	}

	if m.form == nil {
		return m, nil
	}

	switch m.state {
	case addExpenseStateForm:
		return m.updateForm(msg)
	case addExpenseStateNewCategory, addExpenseStateNewAccountType:
		return m.updateNewNameForm(msg)
	}

	return m, nil
}

func (m AddExpenseModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.formCategory == newOptionValue {
		m.state = addExpenseStateNewCategory
		m.buildNewNameForm("New category name")

		return m, m.form.Init()
	}

	if m.formAccount == newOptionValue {
		m.state = addExpenseStateNewAccountType
		m.buildNewNameForm("New account type name")

		return m, m.form.Init()
	}

	m.state = addExpenseStateSaving

	return m, m.saveCmd()
}

func (m AddExpenseModel) updateNewNameForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	name := m.formNewName

	if m.state == addExpenseStateNewCategory {
		m.formCategory = ""
		return m, m.addCategoryCmd(name)
	}

	m.formAccount = ""

	return m, m.addAccountTypeCmd(name)
}

func (m *AddExpenseModel) buildForm() {
	categoryOptions := make([]huh.Option[string], 0, len(m.categories)+1)
	for _, c := range m.categories {
		categoryOptions = append(categoryOptions, huh.NewOption(c.Name, c.ID.String()))
	}

	categoryOptions = append(categoryOptions, huh.NewOption("+ Add new category", newOptionValue))

	accountOptions := make([]huh.Option[string], 0, len(m.accountTypes)+1)
	for _, at := range m.accountTypes {
		accountOptions = append(accountOptions, huh.NewOption(at, at))
	}

	accountOptions = append(accountOptions, huh.NewOption("+ Add new account type", newOptionValue))

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
				Key("item").
				Title("Item").
				Value(&m.formItem),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Value(&m.formAmount).
				Validate(func(s string) error {
					_, err := ParseAmount(s)
					return err
				}),

			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(categoryOptions...).
				Value(&m.formCategory),

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

func (m *AddExpenseModel) buildNewNameForm(title string) {
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title(title).
				Value(&m.formNewName),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m AddExpenseModel) View() string {
	switch m.state {
	case addExpenseStateLoading:
		return lipgloss.NewStyle().Padding(2).Render("Loading...")
	case addExpenseStateSaving:
		return lipgloss.NewStyle().Padding(2).Render("Saving...")
	}

	statusLine := ""
	if m.status != "" {
		statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n\n"
	}

	return lipgloss.NewStyle().Padding(1).Render(
		statusLine + m.form.View() + "\n" + m.recentView(),
	)
}

func (m AddExpenseModel) recentView() string {
	if len(m.recent) == 0 {
		return ""
	}

	lines := make([]string, 0, len(m.recent)+1)
	lines = append(lines, "Recent expenses:")

	for _, e := range m.recent {
		name := e.CategoryName
		if name == "" {
			name = "Unknown"
		}

		lines = append(lines, fmt.Sprintf("  %s  %8s  %-12s  %s",
			FormatDate(e.Date), FormatAmount(e.Amount), name, e.Item))
	}

	return lipgloss.NewStyle().Faint(true).Render(strings.Join(lines, "\n"))
}

// Messages

type expenseRefDataMsg struct {
	categories   []*category.Category
	accountTypes []string
	recent       []*expense.Expense
	err          error
}

func (m AddExpenseModel) loadRefDataCmd() tea.Cmd {
	categorySvc := m.categoryService
	accountSvc := m.accountService
	expenseSvc := m.expenseService
	userID := m.userID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		categories, err := categorySvc.List(ctx)
		if err != nil {
			return expenseRefDataMsg{err: err}
		}

		accountTypes, err := accountSvc.List(ctx, userID)
		if err != nil {
			return expenseRefDataMsg{err: err}
		}

		recent, err := expenseSvc.ListRecent(ctx, userID, 5)
		if err != nil {
			return expenseRefDataMsg{err: err}
		}

		return expenseRefDataMsg{
			categories:   categories,
			accountTypes: accountTypes,
			recent:       recent,
		}
	}
}

// addNameResultMsg carries the select value of the created entry so
// the form can preselect it after the reload.
type addNameResultMsg struct {
	value string
	err   error
}

func (m AddExpenseModel) addCategoryCmd(name string) tea.Cmd {
	svc := m.categoryService

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		c, err := svc.Add(ctx, name)
		if err != nil {
			return addNameResultMsg{err: err}
		}

		return addNameResultMsg{value: c.ID.String()}
	}
}

func (m AddExpenseModel) addAccountTypeCmd(name string) tea.Cmd {
	svc := m.accountService
	userID := m.userID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		stored, err := svc.Add(ctx, userID, name)
		if err != nil {
			return addNameResultMsg{err: err}
		}

		return addNameResultMsg{value: stored}
	}
}

type saveExpenseResultMsg struct {
	err error
}

func (m AddExpenseModel) saveCmd() tea.Cmd {
	svc := m.expenseService
	userID := m.userID

	date, _ := time.Parse(time.DateOnly, strings.TrimSpace(m.formDate))
	amount, _ := ParseAmount(m.formAmount)

	var categoryID *uuid.UUID
	if id, err := uuid.Parse(m.formCategory); err == nil {
		categoryID = &id
	}

	params := expense.CreateParams{
		Date:        date,
		Item:        m.formItem,
		Description: m.formDesc,
		CategoryID:  categoryID,
		Amount:      amount,
		AccountType: m.formAccount,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := svc.Create(ctx, userID, params)

		return saveExpenseResultMsg{err: err}
	}
}
