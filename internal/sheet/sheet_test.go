// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sheet

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeWorkbook builds a two-sheet fixture workbook on disk.
func writeWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]any{
		{"name", "qty", "price"},
		{"widget", 2, 9.99},
		{"gadget", 5, 1.25},
	}
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue("Sheet1", cell, v); err != nil {
				t.Fatal(err)
			}
		}
	}

	if _, err := f.NewSheet("Extras"); err != nil {
		t.Fatal(err)
	}
	if err := f.SetCellValue("Extras", "A1", "note"); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "book.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSheetNames(t *testing.T) {
	path := writeWorkbook(t)

	names, err := SheetNames(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(names, []string{"Sheet1", "Extras"}) {
		t.Errorf("names = %v", names)
	}
}

func TestReadRows(t *testing.T) {
	path := writeWorkbook(t)

	rows, err := ReadRows(path, "Sheet1")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows", len(rows))
	}
	if !reflect.DeepEqual(rows[0], []string{"name", "qty", "price"}) {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][0] != "widget" || rows[1][1] != "2" {
		t.Errorf("data row = %v", rows[1])
	}
}

func TestReadRowsUnknownSheet(t *testing.T) {
	path := writeWorkbook(t)

	if _, err := ReadRows(path, "Nope"); err == nil {
		t.Error("expected error for unknown sheet")
	}
}

func TestToCSV(t *testing.T) {
	path := writeWorkbook(t)
	out := filepath.Join(t.TempDir(), "out.csv")

	if err := ToCSV(path, out, ""); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d csv lines: %q", len(lines), data)
	}
	if lines[0] != "name,qty,price" {
		t.Errorf("header line = %q", lines[0])
	}
}

func TestToJSON(t *testing.T) {
	path := writeWorkbook(t)
	out := filepath.Join(t.TempDir(), "out.json")

	if err := ToJSON(path, out, "Sheet1"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var records []map[string]string
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records", len(records))
	}
	if records[0]["name"] != "widget" || records[0]["qty"] != "2" {
		t.Errorf("record 0 = %v", records[0])
	}
}

func TestRowsToRecords(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want []map[string]string
	}{
		{name: "empty sheet", rows: nil, want: []map[string]string{}},
		{name: "headers only", rows: [][]string{{"a"}}, want: []map[string]string{}},
		{
			name: "blank header becomes col_N",
			rows: [][]string{{"a", "", "c"}, {"1", "2", "3"}},
			want: []map[string]string{{"a": "1", "col_1": "2", "c": "3"}},
		},
		{
			name: "short row pads",
			rows: [][]string{{"a", "b"}, {"1"}},
			want: []map[string]string{{"a": "1", "b": ""}},
		},
		{
			name: "long row truncates",
			rows: [][]string{{"a"}, {"1", "overflow"}},
			want: []map[string]string{{"a": "1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RowsToRecords(tt.rows)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("records = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	path := writeWorkbook(t)

	sum, err := Summarize(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(sum.Sheets) != 2 {
		t.Fatalf("got %d sheets", len(sum.Sheets))
	}
	if sum.Sheets[0].Name != "Sheet1" || sum.Sheets[0].Rows != 3 || sum.Sheets[0].Cols != 3 {
		t.Errorf("sheet 1 summary = %+v", sum.Sheets[0])
	}

	text := sum.Render()
	if !strings.Contains(text, "Sheet1: 3 rows x 3 cols") {
		t.Errorf("rendered summary = %q", text)
	}
}
