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
	"github.com/kogulmurugaiah/expensetrack/internal/category"
	"github.com/kogulmurugaiah/expensetrack/internal/expense"
)

type expensesState int

const (
	expensesStateList expensesState = iota
	expensesStateEditing
	expensesStateConfirmDelete
)

// expenseItem wraps an expense to implement list.Item.
type expenseItem struct {
	e *expense.Expense
}

func (i expenseItem) Title() string {
	name := i.e.CategoryName
	if name == "" {
		name = "Unknown"
	}

	cat := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("[%s]", name))

	return fmt.Sprintf("%s  %8s  %s  %s", FormatDate(i.e.Date), FormatAmount(i.e.Amount), cat, i.e.Item)
}

func (i expenseItem) Description() string {
	if i.e.Description == "" {
		return i.e.AccountType
	}

	return fmt.Sprintf("%s  %s", i.e.AccountType, i.e.Description)
}

func (i expenseItem) FilterValue() string { return i.e.Item }

type ExpensesModel struct {
	CommonModel
	expenseService  *expense.Service
	categoryService *category.Service
	accountService  *accounttype.Service
	userID          uuid.UUID

	state    expensesState
	list     list.Model
	form     *huh.Form
	expenses []*expense.Expense
	selected *expense.Expense

	categories   []*category.Category
	accountTypes []string

	year  int
	month time.Month

	// fetchSeq stamps every load; results from an older fetch are
	// dropped so a fast month switch cannot paint stale rows.
	fetchSeq int

	loading bool
	status  string

	formDate     string
	formItem     string
	formDesc     string
	formAmount   string
	formCategory string
	formAccount  string
	confirmDel   bool
}

func NewExpensesModel(
	expenseSvc *expense.Service,
	categorySvc *category.Service,
	accountSvc *accounttype.Service,
	userID uuid.UUID,
) ExpensesModel {
	l := list.New([]list.Item{}, expenseItemDelegate{}, 0, 0)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	now := time.Now()

	return ExpensesModel{
		expenseService:  expenseSvc,
		categoryService: categorySvc,
		accountService:  accountSvc,
		userID:          userID,
		list:            l,
		year:            now.Year(),
		month:           now.Month(),
		loading:         true,
	}
}

func (m ExpensesModel) Title() string { return "Browse Expenses" }

func (m ExpensesModel) ShortHelp() string {
	switch m.state {
	case expensesStateList:
		return "Esc: back | m/M: month | Enter: edit | d: delete | /: filter"
	case expensesStateEditing:
		return "Esc: cancel | Enter/Tab: navigate form"
	case expensesStateConfirmDelete:
		return "Esc: cancel"
	}

	return ""
}

func (m ExpensesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ExpensesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadExpensesMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}

		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.expenses = msg.expenses
		m.categories = msg.categories
		m.accountTypes = msg.accountTypes
		m.refreshListItems()

		m.status = ""
		if len(msg.expenses) == 0 {
			m.status = "No expenses this month."
		}

		return m, nil

	case mutateExpenseResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			m.state = expensesStateList

			return m, nil
		}

		m.status = msg.status
		m.state = expensesStateList

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil
	}

	switch m.state {
	case expensesStateList:
		return m.updateList(msg)
	case expensesStateEditing, expensesStateConfirmDelete:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m ExpensesModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m ExpensesModel) startEditing() (tea.Model, tea.Cmd) {
	selected, ok := m.list.SelectedItem().(expenseItem)
	if !ok {
		return m, nil
	}

	m.selected = selected.e
	m.formDate = FormatDate(selected.e.Date)
	m.formItem = selected.e.Item
	m.formDesc = selected.e.Description
	m.formAmount = FormatAmount(selected.e.Amount)
	m.formAccount = selected.e.AccountType

	m.formCategory = ""
	if selected.e.CategoryID != nil {
		m.formCategory = selected.e.CategoryID.String()
	}

	m.buildEditForm()
	m.state = expensesStateEditing

	return m, m.form.Init()
}

func (m *ExpensesModel) buildEditForm() {
	// The empty value keeps uncategorized rows uncategorized instead of
	// snapping the select to the first category.
	categoryOptions := make([]huh.Option[string], 0, len(m.categories)+1)
	categoryOptions = append(categoryOptions, huh.NewOption("(none)", ""))

	for _, c := range m.categories {
		categoryOptions = append(categoryOptions, huh.NewOption(c.Name, c.ID.String()))
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
				Key("item").
				Title("Item").
				Value(&m.formItem).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("item is required")
					}
					return nil
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
				Title("Description").
				Value(&m.formDesc),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ExpensesModel) startDelete() (tea.Model, tea.Cmd) {
	selected, ok := m.list.SelectedItem().(expenseItem)
	if !ok {
		return m, nil
	}

	m.selected = selected.e
	m.confirmDel = false

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title(fmt.Sprintf("Delete %q (%s)?", selected.e.Item, FormatAmount(selected.e.Amount))).
				Affirmative("Delete").
				Negative("Keep").
				Value(&m.confirmDel),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = expensesStateConfirmDelete

	return m, m.form.Init()
}

func (m ExpensesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = expensesStateList
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

	if m.state == expensesStateConfirmDelete {
		if !m.confirmDel {
			m.state = expensesStateList
			return m, nil
		}

		return m, m.deleteCmd()
	}

	return m, m.saveCmd()
}

func (m ExpensesModel) View() string {
	header := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("Expenses - %s %d", m.month, m.year),
	)

	switch m.state {
	case expensesStateList:
		if m.loading {
			return lipgloss.NewStyle().Padding(2).Render("Loading expenses...")
		}

		statusLine := ""
		if m.status != "" {
			statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n"
		}

		return lipgloss.NewStyle().Padding(1).Render(
			header + "\n" + statusLine + m.list.View(),
		)

	case expensesStateEditing, expensesStateConfirmDelete:
		if m.form == nil {
			return ""
		}

		return lipgloss.NewStyle().Padding(1).Render(header + "\n\n" + m.form.View())
	}

	return ""
}

func (m *ExpensesModel) refreshListItems() {
	items := make([]list.Item, len(m.expenses))
	for i, e := range m.expenses {
		items[i] = expenseItem{e: e}
	}

	m.list.SetItems(items)
}

func prevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}

	return year, month - 1
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}

	return year, month + 1
}

// Messages

type loadExpensesMsg struct {
	seq          int
	expenses     []*expense.Expense
	categories   []*category.Category
	accountTypes []string
	err          error
}

func (m ExpensesModel) loadCmd() tea.Cmd {
	seq := m.fetchSeq
	expenseSvc := m.expenseService
	categorySvc := m.categoryService
	accountSvc := m.accountService
	userID := m.userID
	year, month := m.year, m.month

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		expenses, err := expenseSvc.ListMonth(ctx, userID, year, month)
		if err != nil {
			return loadExpensesMsg{seq: seq, err: err}
		}

		categories, err := categorySvc.List(ctx)
		if err != nil {
			return loadExpensesMsg{seq: seq, err: err}
		}

		accountTypes, err := accountSvc.List(ctx, userID)
		if err != nil {
			return loadExpensesMsg{seq: seq, err: err}
		}

		return loadExpensesMsg{
			seq:          seq,
			expenses:     expenses,
			categories:   categories,
			accountTypes: accountTypes,
		}
	}
}

type mutateExpenseResultMsg struct {
	status string
	err    error
}

func (m ExpensesModel) saveCmd() tea.Cmd {
	svc := m.expenseService
	userID := m.userID
	id := m.selected.ID

	date, _ := time.Parse(time.DateOnly, strings.TrimSpace(m.formDate))
	amount, _ := ParseAmount(m.formAmount)
	item := m.formItem
	desc := m.formDesc
	account := m.formAccount

	var categoryID *uuid.UUID
	if parsed, err := uuid.Parse(m.formCategory); err == nil {
		categoryID = &parsed
	}

	clearCat := m.formCategory == ""

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := svc.Update(ctx, userID, id, expense.UpdateParams{
			Date:        &date,
			Item:        &item,
			Description: &desc,
			CategoryID:  categoryID,
			ClearCat:    clearCat,
			Amount:      &amount,
			AccountType: &account,
		})
		if err != nil {
			return mutateExpenseResultMsg{err: err}
		}

		return mutateExpenseResultMsg{status: "Saved."}
	}
}

func (m ExpensesModel) deleteCmd() tea.Cmd {
	svc := m.expenseService
	userID := m.userID
	id := m.selected.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := svc.Delete(ctx, userID, id); err != nil {
			return mutateExpenseResultMsg{err: err}
		}

		return mutateExpenseResultMsg{status: "Deleted."}
	}
}

// expenseItemDelegate renders items in the list.
type expenseItemDelegate struct{}

func (d expenseItemDelegate) Height() int                             { return 2 }
func (d expenseItemDelegate) Spacing() int                            { return 0 }
func (d expenseItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d expenseItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(expenseItem)
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
