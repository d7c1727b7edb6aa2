// Package report builds the monthly and yearly spending breakdowns:
// category totals, account-type totals, time series and
// percentage-of-total figures, all derived from one fetched expense set.
package report

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/kogulmurugaiah/expensetrack/internal/expense"
)

// UnknownCategory labels rows without a category. All uncategorized
// rows collapse into this one bucket, keyed by uuid.Nil.
const UnknownCategory = "Unknown"

type CategoryTotal struct {
	CategoryID   uuid.UUID // uuid.Nil for the Unknown bucket
	CategoryName string
	Total        int64
	Percentage   string
}

type AccountTotal struct {
	AccountType string
	Total       int64
	Percentage  string
}

// DayTotal is one point of the daily series. Days without expenses are
// present with a zero total.
type DayTotal struct {
	Day   int
	Total int64
}

// MonthTotal is one bar of the yearly series. Months without expenses
// are absent, not zero-valued.
type MonthTotal struct {
	Month     time.Month
	MonthName string
	Total     int64
}

// GrandTotal sums all fetched rows, independent of any grouping.
func GrandTotal(expenses []*expense.Expense) int64 {
	var total int64
	for _, e := range expenses {
		total += e.Amount
	}

	return total
}

// Percentage renders part/total as a share with one decimal place.
// A zero total yields "0.0" rather than a division fault.
func Percentage(part, total int64) string {
	if total == 0 {
		return "0.0"
	}

	return fmt.Sprintf("%.1f", float64(part)/float64(total)*100)
}

// CategoryTotals groups expenses by category, sorted by total
// descending. Percentages are shares of the grand total.
func CategoryTotals(expenses []*expense.Expense) []CategoryTotal {
	grand := GrandTotal(expenses)

	idx := make(map[uuid.UUID]int)

	var totals []CategoryTotal

	for _, e := range expenses {
		id := uuid.Nil
		name := UnknownCategory

		if e.CategoryID != nil {
			id = *e.CategoryID
			if e.CategoryName != "" {
				name = e.CategoryName
			}
		}

		if i, ok := idx[id]; ok {
			totals[i].Total += e.Amount
			continue
		}

		idx[id] = len(totals)

		totals = append(totals, CategoryTotal{
			CategoryID:   id,
			CategoryName: name,
			Total:        e.Amount,
		})
	}

	slices.SortStableFunc(totals, func(a, b CategoryTotal) int {
		return cmp.Compare(b.Total, a.Total)
	})

	for i := range totals {
		totals[i].Percentage = Percentage(totals[i].Total, grand)
	}

	return totals
}

// AccountTotals sums expenses per entry of the user's account-type set.
// Types summing to zero are dropped; the rest sort by total descending.
func AccountTotals(expenses []*expense.Expense, accountTypes []string) []AccountTotal {
	grand := GrandTotal(expenses)

	var totals []AccountTotal

	for _, at := range accountTypes {
		var total int64

		for _, e := range expenses {
			if e.AccountType == at {
				total += e.Amount
			}
		}

		if total == 0 {
			continue
		}

		totals = append(totals, AccountTotal{
			AccountType: at,
			Total:       total,
			Percentage:  Percentage(total, grand),
		})
	}

	slices.SortStableFunc(totals, func(a, b AccountTotal) int {
		return cmp.Compare(b.Total, a.Total)
	})

	return totals
}

// DailySeries produces one point per calendar day of the month,
// zero-filled for days with no expenses.
func DailySeries(expenses []*expense.Expense, year int, month time.Month) []DayTotal {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	series := make([]DayTotal, daysInMonth)
	for i := range series {
		series[i].Day = i + 1
	}

	for _, e := range expenses {
		if e.Date.Year() != year || e.Date.Month() != month {
			continue
		}

		series[e.Date.Day()-1].Total += e.Amount
	}

	return series
}

// MonthlySeries produces one point per calendar month with a nonzero
// total. Zero months are dropped, unlike the zero-filled daily series.
func MonthlySeries(expenses []*expense.Expense) []MonthTotal {
	var byMonth [12]int64

	for _, e := range expenses {
		byMonth[e.Date.Month()-1] += e.Amount
	}

	var series []MonthTotal

	for m := time.January; m <= time.December; m++ {
		if byMonth[m-1] == 0 {
			continue
		}

		series = append(series, MonthTotal{
			Month:     m,
			MonthName: m.String(),
			Total:     byMonth[m-1],
		})
	}

	return series
}
