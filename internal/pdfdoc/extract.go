// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfdoc

import (
	"fmt"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// ExtractText returns the text of the selected pages, each non-empty page
// headed by "--- Page N ---". Pages that yield no text are omitted; a page
// whose text cannot be decoded is skipped rather than failing the run.
func ExtractText(path, pageSpec string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	pages, err := ParsePageRange(pageSpec, reader.NumPage())
	if err != nil {
		return "", err
	}

	var blocks []string
	for _, idx := range pages {
		page := reader.Page(idx + 1)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		blocks = append(blocks, fmt.Sprintf("--- Page %d ---\n%s", idx+1, text))
	}

	return strings.Join(blocks, "\n\n"), nil
}
