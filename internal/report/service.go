package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kogulmurugaiah/expensetrack/internal/expense"
)

//go:generate mockgen -source=service.go -destination=deps_mock.go -package=report
type ExpenseLister interface {
	ListRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*expense.Expense, error)
}

type AccountTypeLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type Service struct {
	expenses     ExpenseLister
	accountTypes AccountTypeLister
}

func NewService(expenses ExpenseLister, accountTypes AccountTypeLister) *Service {
	return &Service{expenses: expenses, accountTypes: accountTypes}
}

type MonthlyReport struct {
	Year           int
	Month          time.Month
	GrandTotal     int64
	CategoryTotals []CategoryTotal
	AccountTotals  []AccountTotal
	DailySeries    []DayTotal
}

type YearlyReport struct {
	Year           int
	GrandTotal     int64
	CategoryTotals []CategoryTotal
	AccountTotals  []AccountTotal
	MonthlySeries  []MonthTotal
}

// Monthly fetches the user's expenses for the calendar month and
// derives every breakdown from that single result set.
func (s *Service) Monthly(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*MonthlyReport, error) {
	start, end := expense.MonthRange(year, month)

	expenses, err := s.expenses.ListRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	accountTypes, err := s.accountTypes.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &MonthlyReport{
		Year:           year,
		Month:          month,
		GrandTotal:     GrandTotal(expenses),
		CategoryTotals: CategoryTotals(expenses),
		AccountTotals:  AccountTotals(expenses, accountTypes),
		DailySeries:    DailySeries(expenses, year, month),
	}, nil
}

// Yearly fetches the user's expenses for the calendar year.
func (s *Service) Yearly(ctx context.Context, userID uuid.UUID, year int) (*YearlyReport, error) {
	start, end := expense.YearRange(year)

	expenses, err := s.expenses.ListRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	accountTypes, err := s.accountTypes.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &YearlyReport{
		Year:           year,
		GrandTotal:     GrandTotal(expenses),
		CategoryTotals: CategoryTotals(expenses),
		AccountTotals:  AccountTotals(expenses, accountTypes),
		MonthlySeries:  MonthlySeries(expenses),
	}, nil
}
