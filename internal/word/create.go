// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package word

import (
	"fmt"
	"os"

	"github.com/fumiama/go-docx"
)

// buildDocument writes blocks as a Word document at path.
func buildDocument(path string, blocks []block) error {
	w := docx.New().WithDefaultTheme()
	for _, bl := range blocks {
		p := w.AddParagraph()
		if bl.style != "" {
			p.Properties = &docx.ParagraphProperties{Style: &docx.Style{Val: bl.style}}
		}
		p.AddText(bl.text)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := w.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing docx: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// CreateBlank writes an empty document, with a Title-styled heading when
// title is non-empty.
func CreateBlank(path, title string) error {
	var blocks []block
	if title != "" {
		blocks = append(blocks, block{style: styleTitle, text: title})
	}
	return buildDocument(path, blocks)
}
