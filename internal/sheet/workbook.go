// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sheet wraps Excel workbook reading: sheet listing, row access, and
// CSV/JSON conversion.
package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SheetNames lists the workbook's sheet names in order.
func SheetNames(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

// ReadRows returns all rows of the named sheet as strings. An empty sheet
// name selects the active sheet.
func ReadRows(path, sheetName string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(f.GetActiveSheetIndex())
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheetName, err)
	}
	return rows, nil
}
