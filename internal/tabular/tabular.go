// Package tabular parses the comma-separated, quote-escaped question
// catalog format. It is deliberately hand-rolled rather than built on
// encoding/csv: the format tolerates malformed input (unterminated
// quotes, ragged rows) that encoding/csv rejects, and no row may ever
// be dropped for being malformed.
package tabular

import "strings"

// FieldMap is one data row expressed as header-name-to-value pairs.
type FieldMap map[string]string

// Table holds the parsed catalog: trimmed header names and one FieldMap
// per non-blank data row, in input order.
type Table struct {
	Headers []string
	Rows    []FieldMap
}

// ParseRecords splits raw text into records of fields.
//
// Fields are separated by commas, records by "\n" or "\r\n". A field
// wrapped in double quotes may contain literal commas and line breaks;
// a doubled quote inside a quoted field stands for one quote character.
// A trailing record with no final line break is still emitted.
//
// An unterminated quote is not an error: the remainder of the input is
// consumed as quoted content of the current field. Parsing always
// terminates at end of input.
func ParseRecords(text string) [][]string {
	var (
		records  [][]string
		record   []string
		field    strings.Builder
		inQuotes bool
	)

	endField := func() {
		record = append(record, field.String())
		field.Reset()
	}
	endRecord := func() {
		endField()
		records = append(records, record)
		record = nil
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case inQuotes:
			if c == '"' {
				if i+1 < len(runes) && runes[i+1] == '"' {
					field.WriteRune('"')
					i++
				} else {
					inQuotes = false
				}
			} else {
				field.WriteRune(c)
			}
		case c == '"':
			inQuotes = true
		case c == ',':
			endField()
		case c == '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			endRecord()
		case c == '\n':
			endRecord()
		default:
			field.WriteRune(c)
		}
	}

	// Trailing record without a final line break.
	if field.Len() > 0 || len(record) > 0 {
		endRecord()
	}

	return records
}

// ParseTable parses text into a Table. The first record is consumed as
// the header row (names trimmed of surrounding whitespace). Each
// remaining record is zipped against the headers; missing trailing
// fields map to the empty string and surplus fields are ignored.
// Records whose every field is blank after trimming are filtered out.
func ParseTable(text string) Table {
	records := ParseRecords(text)
	if len(records) == 0 {
		return Table{}
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	var rows []FieldMap
	for _, record := range records[1:] {
		if blankRecord(record) {
			continue
		}
		row := make(FieldMap, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = record[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}

	return Table{Headers: headers, Rows: rows}
}

func blankRecord(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
