// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfdoc

import (
	"fmt"
	"strings"
	"unicode/utf8"

	pdflib "github.com/ledongthuc/pdf"
)

// contextBytes is how much surrounding text a match reports on each side.
const contextBytes = 50

// Match is one page containing the query, with surrounding context.
type Match struct {
	Page    int
	Context string
}

// Search scans every page for the query, case-insensitively, and returns the
// pages that contain it with context around the first occurrence.
func Search(path, query string) ([]Match, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	needle := strings.ToLower(query)
	var matches []Match

	for n := 1; n <= reader.NumPage(); n++ {
		page := reader.Page(n)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		idx := strings.Index(strings.ToLower(text), needle)
		if idx < 0 {
			continue
		}

		start := clampRuneStart(text, idx-contextBytes)
		end := clampRuneStart(text, idx+len(query)+contextBytes)
		matches = append(matches, Match{
			Page:    n,
			Context: fmt.Sprintf("...%s...", text[start:end]),
		})
	}

	return matches, nil
}

// clampRuneStart clamps i into [0, len(s)] and backs it up to a rune boundary.
func clampRuneStart(s string, i int) int {
	if i < 0 {
		return 0
	}
	if i > len(s) {
		return len(s)
	}
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}
