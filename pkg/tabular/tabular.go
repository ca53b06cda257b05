// Package tabular parses the comma-separated dataset format used for tool lists.
//
// The dialect is intentionally forgiving: fields may be enclosed in double quotes,
// a doubled quote inside an enclosure decodes to a literal quote, CR characters
// outside quotes are dropped, and an unterminated quote swallows the rest of the
// input as literal text instead of failing.
package tabular

import (
	"strings"
)

// Row maps header names to trimmed cell values.
type Row map[string]string

const (
	quote     = '"'
	separator = ','
	bom       = "\ufeff"
)

// Rows scans text into raw rows of untrimmed cells.
// A trailing partial row (no final line feed) is flushed as the last row.
func Rows(text string) [][]string {
	var (
		rows     [][]string
		row      []string
		cur      strings.Builder
		inQuotes bool
	)

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		c := runes[i]

		if inQuotes {
			if c == quote && i+1 < len(runes) && runes[i+1] == quote {
				cur.WriteRune(quote)
				i++
				continue
			}
			if c == quote {
				inQuotes = false
				continue
			}
			cur.WriteRune(c)
			continue
		}

		switch c {
		case quote:
			inQuotes = true
		case separator:
			row = append(row, cur.String())
			cur.Reset()
		case '\n':
			row = append(row, cur.String())
			rows = append(rows, row)
			row = nil
			cur.Reset()
		case '\r':
		default:
			cur.WriteRune(c)
		}
	}

	if cur.Len() > 0 || len(row) > 0 {
		row = append(row, cur.String())
		rows = append(rows, row)
	}

	return rows
}

// Parse converts text into one Row per data line, keyed by the trimmed header cells.
//
// Rows shorter than the header are padded with empty strings and extra cells are
// ignored. A data line holding a single blank cell is skipped. When the header
// repeats a name, the right-most column wins. A leading byte order mark is
// dropped. Empty input yields nil.
func Parse(text string) []Row {
	rows := Rows(strings.TrimPrefix(text, bom))
	if len(rows) == 0 {
		return nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	var data []Row
	for _, cols := range rows[1:] {
		if len(cols) == 1 && strings.TrimSpace(cols[0]) == "" {
			continue
		}

		row := make(Row, len(headers))
		for c, h := range headers {
			val := ""
			if c < len(cols) {
				val = strings.TrimSpace(cols[c])
			}
			row[h] = val
		}
		data = append(data, row)
	}

	return data
}
