package utils

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// SplitLine splits one line of a backup CSV file.
//
// A double quote toggles the in-quote state and is dropped from the
// output; a comma always ends the current field, even between quotes.
// Escaped quotes are not supported. This is deliberately not
// general-purpose CSV quoting: backups written by BuildTable only
// round-trip through this splitter, so both sides have to stay in sync.
func SplitLine(line string) []string {
	out := []string{}
	var current strings.Builder
	insideQuotes := false

	for _, ch := range line {
		if ch == '"' {
			insideQuotes = !insideQuotes
			continue
		}
		if ch == ',' {
			out = append(out, current.String())
			current.Reset()
			continue
		}
		current.WriteRune(ch)
	}

	out = append(out, current.String())
	return out
}

// FormatValue stringifies one cell the way the backup writer stores it:
// strings and timestamps are quoted, numbers and booleans are bare, nil
// becomes a quoted empty string.
func FormatValue(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return `""`
	case []byte:
		b, _ := json.Marshal(string(value))
		return string(b)
	case time.Time:
		b, _ := json.Marshal(value)
		return string(b)
	default:
		b, err := json.Marshal(value)
		if err != nil {
			b, _ = json.Marshal(fmt.Sprint(value))
		}
		return string(b)
	}
}

// BuildTable renders a full table export: one header line with the
// column names, then one line per row. No trailing newline.
func BuildTable(cols []string, rows [][]interface{}) []byte {
	var sb strings.Builder
	sb.WriteString(strings.Join(cols, ","))
	sb.WriteString("\n")

	for i, row := range rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		cells := make([]string, len(cols))
		for j := range cols {
			var v interface{}
			if j < len(row) {
				v = row[j]
			}
			cells[j] = FormatValue(v)
		}
		sb.WriteString(strings.Join(cells, ","))
	}
	return []byte(sb.String())
}

// ParseTable reads a table export back into row maps keyed by the
// header line. Empty or missing cells become nil so the insert writes
// NULL instead of an empty string.
func ParseTable(data []byte) []map[string]interface{} {
	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	header := SplitLine(strings.TrimRight(lines[0], "\r"))

	rows := make([]map[string]interface{}, 0, len(lines)-1)
	for _, line := range lines[1:] {
		cols := SplitLine(strings.TrimRight(line, "\r"))
		row := map[string]interface{}{}
		for idx, name := range header {
			if idx < len(cols) && cols[idx] != "" {
				row[name] = cols[idx]
			} else {
				row[name] = nil
			}
		}
		rows = append(rows, row)
	}
	return rows
}
