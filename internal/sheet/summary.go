// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SheetSummary is the shape of one sheet.
type SheetSummary struct {
	Name string `json:"name" yaml:"name"`
	Rows int    `json:"rows" yaml:"rows"`
	Cols int    `json:"cols" yaml:"cols"`
}

// Summary describes a workbook's structure.
type Summary struct {
	Path   string         `json:"path" yaml:"path"`
	Sheets []SheetSummary `json:"sheets" yaml:"sheets"`
}

// Summarize reads the workbook's structure: every sheet with its row count
// and widest row.
func Summarize(path string) (Summary, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Summary{}, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sum := Summary{Path: path}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return Summary{}, fmt.Errorf("reading sheet %q: %w", name, err)
		}
		cols := 0
		for _, row := range rows {
			if len(row) > cols {
				cols = len(row)
			}
		}
		sum.Sheets = append(sum.Sheets, SheetSummary{Name: name, Rows: len(rows), Cols: cols})
	}
	return sum, nil
}

// Render formats the summary the way the CLI prints it.
func (s Summary) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Workbook: %s\n", s.Path)
	fmt.Fprintf(&b, "Sheets: %d\n", len(s.Sheets))
	for _, sh := range s.Sheets {
		fmt.Fprintf(&b, "  - %s: %d rows x %d cols\n", sh.Name, sh.Rows, sh.Cols)
	}
	return strings.TrimRight(b.String(), "\n")
}
