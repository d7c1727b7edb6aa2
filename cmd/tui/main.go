package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/kogulmurugaiah/expensetrack/cmd/tui/internal/view"
	"github.com/kogulmurugaiah/expensetrack/internal/accounttype"
	accounttypeStore "github.com/kogulmurugaiah/expensetrack/internal/accounttype/store"
	"github.com/kogulmurugaiah/expensetrack/internal/auth"
	authStore "github.com/kogulmurugaiah/expensetrack/internal/auth/store"
	"github.com/kogulmurugaiah/expensetrack/internal/category"
	categoryStore "github.com/kogulmurugaiah/expensetrack/internal/category/store"
	"github.com/kogulmurugaiah/expensetrack/internal/config"
	"github.com/kogulmurugaiah/expensetrack/internal/database"
	"github.com/kogulmurugaiah/expensetrack/internal/expense"
	expenseStore "github.com/kogulmurugaiah/expensetrack/internal/expense/store"
	"github.com/kogulmurugaiah/expensetrack/internal/importer"
	"github.com/kogulmurugaiah/expensetrack/internal/income"
	incomeStore "github.com/kogulmurugaiah/expensetrack/internal/income/store"
	"github.com/kogulmurugaiah/expensetrack/internal/incomesource"
	incomesourceStore "github.com/kogulmurugaiah/expensetrack/internal/incomesource/store"
	"github.com/kogulmurugaiah/expensetrack/internal/report"
)

type model struct {
	authService     *auth.Service
	expenseService  *expense.Service
	incomeService   *income.Service
	categoryService *category.Service
	accountService  *accounttype.Service
	sourceService   *incomesource.Service
	reportService   *report.Service
	importService   *importer.Service

	userID uuid.UUID

	currentView View

	loginView      view.LoginModel
	addExpenseView view.AddExpenseModel
	addIncomeView  view.AddIncomeModel
	expensesView   view.ExpensesModel
	incomeView     view.IncomeModel
	monthlyView    view.MonthlyModel
	yearlyView     view.YearlyModel
	importView     view.ImportModel
}

type View int

const (
	ViewLogin      View = 0
	ViewMenu       View = 1
	ViewAddExpense View = 2
	ViewAddIncome  View = 3
	ViewExpenses   View = 4
	ViewIncome     View = 5
	ViewMonthly    View = 6
	ViewYearly     View = 7
	ViewImport     View = 8
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	authSvc := auth.NewService(authStore.New(db), cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	expenseSvc := expense.NewService(expenseStore.New(db))
	incomeSvc := income.NewService(incomeStore.New(db))
	categorySvc := category.NewService(categoryStore.New(db))
	accountSvc := accounttype.NewService(accounttypeStore.New(db))
	sourceSvc := incomesource.NewService(incomesourceStore.New(db))
	reportSvc := report.NewService(expenseSvc, accountSvc)
	importSvc := importer.NewService(categorySvc, expenseSvc)

	return model{
		authService:     authSvc,
		expenseService:  expenseSvc,
		incomeService:   incomeSvc,
		categoryService: categorySvc,
		accountService:  accountSvc,
		sourceService:   sourceSvc,
		reportService:   reportSvc,
		importService:   importSvc,
		currentView:     ViewLogin,
		loginView:       view.NewLoginModel(authSvc),
	}
}

func (m model) Init() tea.Cmd {
	return m.loginView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewAddExpense
				m.addExpenseView = view.NewAddExpenseModel(m.expenseService, m.categoryService, m.accountService, m.userID)

				return m, m.addExpenseView.Init()
			case "2":
				m.currentView = ViewAddIncome
				m.addIncomeView = view.NewAddIncomeModel(m.incomeService, m.sourceService, m.accountService, m.userID)

				return m, m.addIncomeView.Init()
			case "3":
				m.currentView = ViewExpenses
				m.expensesView = view.NewExpensesModel(m.expenseService, m.categoryService, m.accountService, m.userID)

				return m, m.expensesView.Init()
			case "4":
				m.currentView = ViewIncome
				m.incomeView = view.NewIncomeModel(m.incomeService, m.sourceService, m.accountService, m.userID)

				return m, m.incomeView.Init()
			case "5":
				m.currentView = ViewMonthly
				m.monthlyView = view.NewMonthlyModel(m.reportService, m.userID)

				return m, m.monthlyView.Init()
			case "6":
				m.currentView = ViewYearly
				m.yearlyView = view.NewYearlyModel(m.reportService, m.userID)

				return m, m.yearlyView.Init()
			case "7":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.importService, m.accountService, m.userID)

				return m, m.importView.Init()
			}
		}

	case view.SignedInMsg:
		m.userID = msg.UserID
		m.currentView = ViewMenu

		return m, nil

	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewLogin:
		var newModel tea.Model
		newModel, cmd = m.loginView.Update(msg)
		m.loginView = newModel.(view.LoginModel)
	case ViewAddExpense:
		var newModel tea.Model
		newModel, cmd = m.addExpenseView.Update(msg)
		m.addExpenseView = newModel.(view.AddExpenseModel)
	case ViewAddIncome:
		var newModel tea.Model
		newModel, cmd = m.addIncomeView.Update(msg)
		m.addIncomeView = newModel.(view.AddIncomeModel)
	case ViewExpenses:
		var newModel tea.Model
		newModel, cmd = m.expensesView.Update(msg)
		m.expensesView = newModel.(view.ExpensesModel)
	case ViewIncome:
		var newModel tea.Model
		newModel, cmd = m.incomeView.Update(msg)
		m.incomeView = newModel.(view.IncomeModel)
	case ViewMonthly:
		var newModel tea.Model
		newModel, cmd = m.monthlyView.Update(msg)
		m.monthlyView = newModel.(view.MonthlyModel)
	case ViewYearly:
		var newModel tea.Model
		newModel, cmd = m.yearlyView.Update(msg)
		m.yearlyView = newModel.(view.YearlyModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewLogin:
		return m.loginView.View()
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"ExpenseTrack\n\n" +
				"1. Add Expense\n" +
				"2. Add Income\n" +
				"3. Browse Expenses\n" +
				"4. Browse Income\n" +
				"5. Monthly Report\n" +
				"6. Yearly Report\n" +
				"7. Import Statement\n\n" +
				"q. Quit",
		)
	case ViewAddExpense:
		return m.addExpenseView.View()
	case ViewAddIncome:
		return m.addIncomeView.View()
	case ViewExpenses:
		return m.expensesView.View()
	case ViewIncome:
		return m.incomeView.View()
	case ViewMonthly:
		return m.monthlyView.View()
	case ViewYearly:
		return m.yearlyView.View()
	case ViewImport:
		return m.importView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
