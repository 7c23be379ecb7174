package utils

import (
	"reflect"
	"testing"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{"plain fields", "a,b,c", []string{"a", "b", "c"}},
		{"quotes dropped", `"a","b"`, []string{"a", "b"}},
		// commas split even between quotes; this is the documented
		// behavior of the restore splitter, not standard CSV
		{"comma inside quotes still splits", `a,"b,c",d`, []string{"a", "b", "c", "d"}},
		{"empty fields", "a,,c", []string{"a", "", "c"}},
		{"trailing empty field", "a,b,", []string{"a", "b", ""}},
		{"single field", "abc", []string{"abc"}},
		{"quoted empty", `""`, []string{""}},
		{"empty line", "", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLine(tt.line)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitLine(%q) = %v, want %v", tt.line, got, tt.expected)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{"nil becomes quoted empty", nil, `""`},
		{"string is quoted", "abc", `"abc"`},
		{"bytes are quoted", []byte("xy"), `"xy"`},
		{"int is bare", int64(42), "42"},
		{"bool is bare", true, "true"},
		{"float is bare", 1.5, "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.value); got != tt.expected {
				t.Errorf("FormatValue(%v) = %s, want %s", tt.value, got, tt.expected)
			}
		})
	}
}

func TestBuildTableParseTableRoundTrip(t *testing.T) {
	cols := []string{"id", "barcode", "item_name", "qty", "invoice_no"}
	rows := [][]interface{}{
		{int64(1), "8964000011", "Bulb 12W", int64(5), "INV-001"},
		{int64(2), "8964000022", "Fan 56in", int64(2), nil},
	}

	parsed := ParseTable(BuildTable(cols, rows))

	if len(parsed) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(parsed))
	}

	first := parsed[0]
	if first["id"] != "1" || first["barcode"] != "8964000011" || first["item_name"] != "Bulb 12W" || first["qty"] != "5" || first["invoice_no"] != "INV-001" {
		t.Errorf("unexpected first row: %v", first)
	}

	// nil survives as NULL, not as empty string
	if parsed[1]["invoice_no"] != nil {
		t.Errorf("expected nil invoice_no, got %v", parsed[1]["invoice_no"])
	}
}

func TestParseTable(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		if rows := ParseTable([]byte("")); rows != nil {
			t.Errorf("expected nil rows, got %v", rows)
		}
	})

	t.Run("header only", func(t *testing.T) {
		rows := ParseTable([]byte("id,name"))
		if len(rows) != 0 {
			t.Errorf("expected no rows, got %v", rows)
		}
	})

	t.Run("missing trailing values become nil", func(t *testing.T) {
		rows := ParseTable([]byte("id,name,phone\n1,ali"))
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		if rows[0]["phone"] != nil {
			t.Errorf("expected nil phone, got %v", rows[0]["phone"])
		}
	})

	t.Run("crlf lines", func(t *testing.T) {
		rows := ParseTable([]byte("id,name\r\n1,ali\r\n2,sara"))
		if len(rows) != 2 || rows[1]["name"] != "sara" {
			t.Errorf("unexpected rows: %v", rows)
		}
	})
}
