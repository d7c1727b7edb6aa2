package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/kogulmurugaiah/expensetrack/internal/apperror"
	enc "github.com/kogulmurugaiah/expensetrack/internal/encoding"
)

// Entry is one parsed statement row, not yet attached to a user or
// resolved against the category table.
type Entry struct {
	Date     time.Time
	Item     string
	Note     string
	Category string
	Amount   int64 // minor units (paise)
}

// Parser reads CSV statement exports. The header row is located by
// matching column names case-insensitively, so column order and extra
// columns do not matter.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// ErrNoHeader means the file had no recognizable header row.
const ErrNoHeader = apperror.Validation("No header row found: expected at least Date and Amount columns")

// Column aliases accepted in the header row.
var (
	dateCols     = []string{"date", "txn date", "transaction date"}
	itemCols     = []string{"item", "description", "narration", "particulars"}
	amountCols   = []string{"amount", "debit", "withdrawal"}
	categoryCols = []string{"category"}
	noteCols     = []string{"note", "remarks"}
)

var dateLayouts = []string{time.DateOnly, "02/01/2006", "02-01-2006", "2 Jan 2006"}

// Parse extracts usable entries from the statement. Rows whose date or
// amount cannot be parsed are counted as skipped rather than failing
// the whole file.
func (p *Parser) Parse(r io.Reader) ([]Entry, int, error) {
	utf8r, err := enc.DecodeUTF8(r)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding statement: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("reading csv: %w", err)
	}

	cols, headerIdx := findHeader(rows)
	if cols == nil {
		return nil, 0, ErrNoHeader
	}

	var (
		entries []Entry
		skipped int
	)

	for _, row := range rows[headerIdx+1:] {
		date, ok := parseDate(cell(row, cols.date))
		if !ok {
			skipped++
			continue
		}

		amount, ok := parseAmount(cell(row, cols.amount))
		if !ok || amount <= 0 {
			skipped++
			continue
		}

		entries = append(entries, Entry{
			Date:     date,
			Item:     cell(row, cols.item),
			Note:     cell(row, cols.note),
			Category: cell(row, cols.category),
			Amount:   amount,
		})
	}

	return entries, skipped, nil
}

type columns struct {
	date     int
	item     int
	amount   int
	category int
	note     int
}

// findHeader scans for the first row containing a date and an amount
// column. Returns nil when no row matches.
func findHeader(rows [][]string) (*columns, int) {
	for idx, row := range rows {
		cols := columns{date: -1, item: -1, amount: -1, category: -1, note: -1}

		for i, cellVal := range row {
			name := strings.ToLower(strings.TrimSpace(cellVal))

			switch {
			case cols.date == -1 && contains(dateCols, name):
				cols.date = i
			case cols.item == -1 && contains(itemCols, name):
				cols.item = i
			case cols.amount == -1 && contains(amountCols, name):
				cols.amount = i
			case cols.category == -1 && contains(categoryCols, name):
				cols.category = i
			case cols.note == -1 && contains(noteCols, name):
				cols.note = i
			}
		}

		if cols.date != -1 && cols.amount != -1 {
			return &cols, idx
		}
	}

	return nil, 0
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}

	return false
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// parseAmount converts a decimal amount string to minor units without
// going through floating point. Thousands separators and a leading
// currency symbol are tolerated; at most two decimal places are kept.
func parseAmount(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "₹")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if s == "" {
		return 0, false
	}

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole, frac, _ := strings.Cut(s, ".")

	if len(frac) > 2 {
		frac = frac[:2]
	}

	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil {
		return 0, false
	}

	if neg {
		units = -units
	}

	return units, true
}
