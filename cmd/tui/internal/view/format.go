package view

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dbTimeout = 5 * time.Second

// FormatAmount formats an amount stored in paise into rupees.
func FormatAmount(paise int64) string {
	return fmt.Sprintf("%.2f", float64(paise)/100.0)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseAmount converts a rupee amount typed into a form field to paise.
func ParseAmount(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, fmt.Errorf("amount is required")
	}

	whole, frac, _ := strings.Cut(s, ".")

	if len(frac) > 2 {
		frac = frac[:2]
	}

	for len(frac) < 2 {
		frac += "0"
	}

	paise, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %s", s)
	}

	return paise, nil
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
