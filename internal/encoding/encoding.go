// Package encoding normalizes uploaded statement files to UTF-8.
// Bank export tools are inconsistent about charsets, so the reader is
// sniffed before the CSV layer ever sees it.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffLen = 4096

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// charsets maps chardet results to decoders for the single-byte
// encodings seen in practice.
var charsets = map[string]encoding.Encoding{
	"ISO-8859-1":   charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"ISO-8859-9":   charmap.ISO8859_9,
}

// DecodeUTF8 wraps r in a reader that yields UTF-8 text.
//
// The stream is sniffed in order: UTF-8/UTF-16 byte order marks, a
// plain UTF-8 validity check, then chardet heuristics. Anything still
// unidentified is assumed to be Windows-1252.
func DecodeUTF8(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("sniffing input: %w", err)
	}

	if bytes.HasPrefix(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
		return br, nil
	}

	if len(head) >= 2 && (head[0] == 0xFF && head[1] == 0xFE || head[0] == 0xFE && head[1] == 0xFF) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		return transform.NewReader(br, dec), nil
	}

	if utf8.Valid(head) {
		return br, nil
	}

	if best, err := chardet.NewTextDetector().DetectBest(head); err == nil {
		if best.Charset == "UTF-8" {
			return br, nil
		}

		if enc, ok := charsets[best.Charset]; ok {
			return transform.NewReader(br, enc.NewDecoder()), nil
		}
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}
