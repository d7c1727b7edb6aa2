package encoding_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kogulmurugaiah/expensetrack/internal/encoding"
)

func decode(t *testing.T, input []byte) string {
	t.Helper()

	r, err := encoding.DecodeUTF8(bytes.NewReader(input))
	require.NoError(t, err)

	out, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(out)
}

func TestDecodeUTF8(t *testing.T) {
	t.Run("PlainUTF8PassesThrough", func(t *testing.T) {
		got := decode(t, []byte("Date,Item,Amount\n2026-03-05,Café,150.50\n"))
		assert.Equal(t, "Date,Item,Amount\n2026-03-05,Café,150.50\n", got)
	})

	t.Run("StripsUTF8BOM", func(t *testing.T) {
		got := decode(t, append([]byte{0xEF, 0xBB, 0xBF}, []byte("Date,Amount")...))
		assert.Equal(t, "Date,Amount", got)
	})

	t.Run("DecodesUTF16LE", func(t *testing.T) {
		input := []byte{0xFF, 0xFE}
		for _, r := range "Date" {
			input = append(input, byte(r), 0x00)
		}

		assert.Equal(t, "Date", decode(t, input))
	})

	t.Run("DecodesUTF16BE", func(t *testing.T) {
		input := []byte{0xFE, 0xFF}
		for _, r := range "Date" {
			input = append(input, 0x00, byte(r))
		}

		assert.Equal(t, "Date", decode(t, input))
	})

	t.Run("DecodesWindows1252", func(t *testing.T) {
		// "Café" with é as the single 0xE9 byte.
		got := decode(t, []byte{'C', 'a', 'f', 0xE9})
		assert.Equal(t, "Café", got)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		assert.Empty(t, decode(t, nil))
	})

	t.Run("LongInputBeyondSniffWindow", func(t *testing.T) {
		input := strings.Repeat("abcdefgh\n", 1024)
		assert.Equal(t, input, decode(t, []byte(input)))
	})
}
