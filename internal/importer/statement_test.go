package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	parser := NewParser()

	t.Run("PlainStatement", func(t *testing.T) {
		csv := strings.Join([]string{
			"Date,Item,Amount,Category",
			"2026-03-05,Groceries,150.50,Food",
			"2026-03-06,Train ticket,45.00,Travel",
		}, "\n")

		entries, skipped, err := parser.Parse(strings.NewReader(csv))

		require.NoError(t, err)
		assert.Zero(t, skipped)
		require.Len(t, entries, 2)

		assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), entries[0].Date)
		assert.Equal(t, "Groceries", entries[0].Item)
		assert.Equal(t, int64(15050), entries[0].Amount)
		assert.Equal(t, "Food", entries[0].Category)
	})

	t.Run("HeaderBelowPreamble", func(t *testing.T) {
		csv := strings.Join([]string{
			"Statement of Account",
			"Account No: 1234",
			"",
			"Txn Date,Narration,Withdrawal",
			"05/03/2026,ATM CASH,500.00",
		}, "\n")

		entries, skipped, err := parser.Parse(strings.NewReader(csv))

		require.NoError(t, err)
		assert.Zero(t, skipped)
		require.Len(t, entries, 1)
		assert.Equal(t, "ATM CASH", entries[0].Item)
		assert.Equal(t, int64(50000), entries[0].Amount)
	})

	t.Run("SkipsUnparsableRows", func(t *testing.T) {
		csv := strings.Join([]string{
			"Date,Item,Amount",
			"2026-03-05,OK row,100.00",
			"not a date,Bad date,100.00",
			"2026-03-07,Bad amount,n/a",
			"2026-03-08,Credit row,-25.00",
		}, "\n")

		entries, skipped, err := parser.Parse(strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, 3, skipped)
		require.Len(t, entries, 1)
		assert.Equal(t, "OK row", entries[0].Item)
	})

	t.Run("NoHeader", func(t *testing.T) {
		_, _, err := parser.Parse(strings.NewReader("just,some,cells\n1,2,3\n"))
		assert.ErrorIs(t, err, ErrNoHeader)
	})
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"150.50", 15050, true},
		{"1,234.56", 123456, true},
		{"₹ 99", 9900, true},
		{"42.5", 4250, true},
		{"10.999", 1099, true},
		{"-25.00", -2500, true},
		{"", 0, false},
		{"n/a", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseAmount(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
