package report_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kogulmurugaiah/expensetrack/internal/expense"
	"github.com/kogulmurugaiah/expensetrack/internal/report"
)

func exp(date string, amount int64, catID *uuid.UUID, catName, accountType string) *expense.Expense {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}

	return &expense.Expense{
		ID:           uuid.New(),
		Date:         d,
		Amount:       amount,
		CategoryID:   catID,
		CategoryName: catName,
		AccountType:  accountType,
	}
}

func TestCategoryTotals(t *testing.T) {
	food := uuid.New()
	travel := uuid.New()

	t.Run("GroupsAndSortsDescending", func(t *testing.T) {
		expenses := []*expense.Expense{
			exp("2026-03-05", 10000, &food, "Food", "CASH"),
			exp("2026-03-20", 5000, &food, "Food", "CASH"),
			exp("2026-03-10", 20000, &travel, "Travel", "SBI"),
		}

		totals := report.CategoryTotals(expenses)

		require.Len(t, totals, 2)
		assert.Equal(t, "Travel", totals[0].CategoryName)
		assert.Equal(t, int64(20000), totals[0].Total)
		assert.Equal(t, "Food", totals[1].CategoryName)
		assert.Equal(t, int64(15000), totals[1].Total)
	})

	t.Run("UncategorizedCollapseIntoOneUnknownBucket", func(t *testing.T) {
		expenses := []*expense.Expense{
			exp("2026-03-01", 1000, nil, "", "CASH"),
			exp("2026-03-02", 2000, nil, "", "CASH"),
			exp("2026-03-03", 3000, &food, "Food", "CASH"),
		}

		totals := report.CategoryTotals(expenses)

		require.Len(t, totals, 2)
		assert.Equal(t, report.UnknownCategory, totals[1].CategoryName)
		assert.Equal(t, uuid.Nil, totals[1].CategoryID)
		assert.Equal(t, int64(3000), totals[1].Total)
	})

	t.Run("SumEqualsGrandTotal", func(t *testing.T) {
		expenses := []*expense.Expense{
			exp("2026-03-05", 10000, &food, "Food", "CASH"),
			exp("2026-03-10", 20000, &travel, "Travel", "SBI"),
			exp("2026-03-11", 333, &travel, "Travel", "SBI"),
		}

		var sum int64
		for _, ct := range report.CategoryTotals(expenses) {
			sum += ct.Total
		}

		assert.Equal(t, report.GrandTotal(expenses), sum)
	})

	t.Run("PercentagesSumToHundred", func(t *testing.T) {
		expenses := []*expense.Expense{
			exp("2026-03-05", 10000, &food, "Food", "CASH"),
			exp("2026-03-10", 20000, &travel, "Travel", "SBI"),
			exp("2026-03-11", 30000, nil, "", "SBI"),
		}

		var sum float64

		for _, ct := range report.CategoryTotals(expenses) {
			p, err := strconv.ParseFloat(ct.Percentage, 64)
			require.NoError(t, err)
			sum += p
		}

		assert.InDelta(t, 100.0, sum, 0.2)
	})
}

func TestAccountTotals(t *testing.T) {
	food := uuid.New()

	accountTypes := []string{"INDIAN", "SBI", "UNION", "CASH"}

	t.Run("DropsZeroTotalsAndSorts", func(t *testing.T) {
		expenses := []*expense.Expense{
			exp("2026-03-05", 10000, &food, "Food", "CASH"),
			exp("2026-03-06", 25000, &food, "Food", "SBI"),
		}

		totals := report.AccountTotals(expenses, accountTypes)

		require.Len(t, totals, 2)
		assert.Equal(t, "SBI", totals[0].AccountType)
		assert.Equal(t, "CASH", totals[1].AccountType)
	})

	t.Run("IgnoresUnrecognizedTypes", func(t *testing.T) {
		expenses := []*expense.Expense{
			exp("2026-03-05", 10000, &food, "Food", "PAYTM"),
		}

		totals := report.AccountTotals(expenses, accountTypes)
		assert.Empty(t, totals)
	})
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		part  int64
		total int64
		want  string
	}{
		{"Half", 50, 100, "50.0"},
		{"OneDecimal", 1, 3, "33.3"},
		{"ZeroTotal", 0, 0, "0.0"},
		{"PartWithZeroTotal", 500, 0, "0.0"},
		{"Full", 100, 100, "100.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, report.Percentage(tt.part, tt.total))
		})
	}
}

func TestDailySeries(t *testing.T) {
	food := uuid.New()

	t.Run("MarchScenario", func(t *testing.T) {
		expenses := []*expense.Expense{
			exp("2026-03-05", 10000, &food, "Food", "CASH"),
			exp("2026-03-20", 5000, &food, "Food", "CASH"),
		}

		series := report.DailySeries(expenses, 2026, time.March)

		require.Len(t, series, 31)

		for _, dt := range series {
			switch dt.Day {
			case 5:
				assert.Equal(t, int64(10000), dt.Total)
			case 20:
				assert.Equal(t, int64(5000), dt.Total)
			default:
				assert.Zero(t, dt.Total, "day %d", dt.Day)
			}
		}
	})

	t.Run("FebruaryLength", func(t *testing.T) {
		series := report.DailySeries(nil, 2026, time.February)
		assert.Len(t, series, 28)
	})

	t.Run("LeapFebruaryLength", func(t *testing.T) {
		series := report.DailySeries(nil, 2028, time.February)
		assert.Len(t, series, 29)
	})
}

func TestMonthlySeries(t *testing.T) {
	food := uuid.New()

	t.Run("ZeroMonthsAbsent", func(t *testing.T) {
		expenses := []*expense.Expense{
			exp("2026-01-15", 10000, &food, "Food", "CASH"),
			exp("2026-03-02", 5000, &food, "Food", "CASH"),
			exp("2026-03-09", 2500, &food, "Food", "CASH"),
		}

		series := report.MonthlySeries(expenses)

		// Exactly two bars: January and March. No zero-valued bars.
		require.Len(t, series, 2)
		assert.Equal(t, time.January, series[0].Month)
		assert.Equal(t, int64(10000), series[0].Total)
		assert.Equal(t, time.March, series[1].Month)
		assert.Equal(t, int64(7500), series[1].Total)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		assert.Empty(t, report.MonthlySeries(nil))
	})
}

func TestService_Monthly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	food := uuid.New()

	expenses := []*expense.Expense{
		exp("2026-03-05", 10000, &food, "Food", "CASH"),
		exp("2026-03-20", 5000, &food, "Food", "CASH"),
	}

	lister := report.NewMockExpenseLister(ctrl)
	lister.EXPECT().
		ListRange(gomock.Any(), userID,
			time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)).
		Return(expenses, nil)

	accounts := report.NewMockAccountTypeLister(ctrl)
	accounts.EXPECT().
		List(gomock.Any(), userID).
		Return([]string{"INDIAN", "SBI", "UNION", "CASH"}, nil)

	svc := report.NewService(lister, accounts)
	got, err := svc.Monthly(context.Background(), userID, 2026, time.March)

	require.NoError(t, err)
	assert.Equal(t, int64(15000), got.GrandTotal)

	require.Len(t, got.CategoryTotals, 1)
	assert.Equal(t, "Food", got.CategoryTotals[0].CategoryName)
	assert.Equal(t, int64(15000), got.CategoryTotals[0].Total)
	assert.Equal(t, "100.0", got.CategoryTotals[0].Percentage)

	require.Len(t, got.AccountTotals, 1)
	assert.Equal(t, "CASH", got.AccountTotals[0].AccountType)

	assert.Len(t, got.DailySeries, 31)
}

func TestService_Yearly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	food := uuid.New()

	expenses := []*expense.Expense{
		exp("2026-01-15", 10000, &food, "Food", "CASH"),
		exp("2026-03-02", 5000, &food, "Food", "SBI"),
	}

	lister := report.NewMockExpenseLister(ctrl)
	lister.EXPECT().
		ListRange(gomock.Any(), userID,
			time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)).
		Return(expenses, nil)

	accounts := report.NewMockAccountTypeLister(ctrl)
	accounts.EXPECT().
		List(gomock.Any(), userID).
		Return([]string{"INDIAN", "SBI", "UNION", "CASH"}, nil)

	svc := report.NewService(lister, accounts)
	got, err := svc.Yearly(context.Background(), userID, 2026)

	require.NoError(t, err)
	assert.Equal(t, int64(15000), got.GrandTotal)
	require.Len(t, got.MonthlySeries, 2)
	assert.Equal(t, "January", got.MonthlySeries[0].MonthName)
	assert.Equal(t, "March", got.MonthlySeries[1].MonthName)
}
