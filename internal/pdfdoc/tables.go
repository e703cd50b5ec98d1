// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfdoc

import (
	"fmt"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// Table holds the reconstructed rows of one page.
type Table struct {
	Page int
	Rows [][]string
}

// minColumnGapFactor scales a fragment's font size into the horizontal gap
// that separates two columns: anything wider than about one character cell is
// a column break.
const minColumnGapFactor = 1.0

// ExtractTables reconstructs tabular structure from positioned text. Text on
// each line is clustered into cells wherever a horizontal gap wider than the
// current font size appears. A page contributes a table only when at least
// one of its lines splits into two or more cells; this is a best-effort
// heuristic, not a full table detector.
func ExtractTables(path, pageSpec string) ([]Table, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	pages, err := ParsePageRange(pageSpec, reader.NumPage())
	if err != nil {
		return nil, err
	}

	var tables []Table
	for _, idx := range pages {
		page := reader.Page(idx + 1)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}

		var cells [][]string
		multi := false
		for _, row := range rows {
			line := splitColumns(row.Content)
			if len(line) == 0 {
				continue
			}
			if len(line) > 1 {
				multi = true
			}
			cells = append(cells, line)
		}
		if multi {
			tables = append(tables, Table{Page: idx + 1, Rows: cells})
		}
	}

	return tables, nil
}

// splitColumns orders a line's text fragments left to right and merges them
// into cells, starting a new cell at each column-sized gap.
func splitColumns(texts []pdflib.Text) []string {
	if len(texts) == 0 {
		return nil
	}

	sorted := make([]pdflib.Text, len(texts))
	copy(sorted, texts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var cells []string
	var cell strings.Builder
	prevEnd := sorted[0].X

	flushCell := func() {
		if s := strings.TrimSpace(cell.String()); s != "" {
			cells = append(cells, s)
		}
		cell.Reset()
	}

	for i, t := range sorted {
		gap := t.X - prevEnd
		threshold := t.FontSize * minColumnGapFactor
		if i > 0 && threshold > 0 && gap > threshold {
			flushCell()
		}
		cell.WriteString(t.S)
		prevEnd = t.X + t.W
	}
	flushCell()

	return cells
}

// RenderCSVRows flattens tables into CSV records with a page marker row
// before each table and a blank record after it.
func RenderCSVRows(tables []Table) [][]string {
	var records [][]string
	for _, tb := range tables {
		records = append(records, []string{fmt.Sprintf("=== Page %d ===", tb.Page)})
		records = append(records, tb.Rows...)
		records = append(records, []string{})
	}
	return records
}
