// Package csvscan splits raw bank export text into rows of fields. Bank CSVs
// in the wild use either ";" or "," as delimiter and are loose about quoting,
// so this is a forgiving character-level scanner rather than encoding/csv.
package csvscan

import "strings"

// DetectDelimiter picks ";" or "," by counting occurrences in the first line.
// A tie goes to comma.
func DetectDelimiter(text string) rune {
	firstLine := text
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		firstLine = text[:i]
	}
	if strings.Count(firstLine, ";") > strings.Count(firstLine, ",") {
		return ';'
	}
	return ','
}

// Parse scans text into rows using the detected delimiter. A double quote
// toggles quoted mode; "" inside quotes is a literal quote; a delimiter or
// newline inside quotes is taken verbatim; \r outside quotes is dropped.
// Rows whose every field is blank are discarded.
func Parse(text string) [][]string {
	delimiter := byte(DetectDelimiter(text))

	var rows [][]string
	var row []string
	var field strings.Builder
	inQuotes := false

	flushField := func() {
		row = append(row, field.String())
		field.Reset()
	}
	flushRow := func() {
		flushField()
		rows = append(rows, row)
		row = nil
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		if inQuotes {
			if c == '"' {
				if i+1 < len(text) && text[i+1] == '"' {
					field.WriteByte('"')
					i++
					continue
				}
				inQuotes = false
				continue
			}
			field.WriteByte(c)
			continue
		}
		switch c {
		case '"':
			inQuotes = true
		case delimiter:
			flushField()
		case '\n':
			flushRow()
		case '\r':
			// dropped
		default:
			field.WriteByte(c)
		}
	}
	flushRow()

	out := rows[:0]
	for _, r := range rows {
		if !blank(r) {
			out = append(out, r)
		}
	}
	return out
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
