// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sheet

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
)

// ToCSV writes all rows of a sheet to csvPath.
func ToCSV(path, csvPath, sheetName string) error {
	rows, err := ReadRows(path, sheetName)
	if err != nil {
		return err
	}

	f, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", csvPath, err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("writing csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", csvPath, err)
	}
	return nil
}

// ToJSON writes a sheet to jsonPath as an array of objects. The first row
// supplies the keys; empty header cells become "col_<index>". Rows shorter
// than the header pad with empty strings, extra cells are dropped.
func ToJSON(path, jsonPath, sheetName string) error {
	rows, err := ReadRows(path, sheetName)
	if err != nil {
		return err
	}

	records := RowsToRecords(rows)
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", jsonPath, err)
	}
	return nil
}

// RowsToRecords applies the header-row convention to raw sheet rows.
func RowsToRecords(rows [][]string) []map[string]string {
	records := []map[string]string{}
	if len(rows) == 0 {
		return records
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		if h == "" {
			h = fmt.Sprintf("col_%d", i)
		}
		headers[i] = h
	}

	for _, row := range rows[1:] {
		rec := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rec[h] = row[i]
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}
