// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package word wraps Word document reading and generation: plain-text
// extraction, metadata, markdown conversion, and blank document creation.
package word

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// open parses the document at path.
func open(path string) (*docx.Docx, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	doc, err := docx.Parse(f, st.Size())
	if err != nil {
		return nil, fmt.Errorf("parsing docx: %w", err)
	}
	return doc, nil
}

// ExtractText returns all document text: every paragraph in order, then every
// table, newline-separated.
func ExtractText(path string) (string, error) {
	doc, err := open(path)
	if err != nil {
		return "", err
	}

	var paras, tables []string
	for _, item := range doc.Document.Body.Items {
		switch t := item.(type) {
		case *docx.Paragraph:
			paras = append(paras, paragraphText(t))
		case *docx.Table:
			tables = append(tables, strings.TrimSpace(t.String()))
		}
	}

	return strings.Join(append(paras, tables...), "\n"), nil
}

// paragraphText collects the text runs of a paragraph.
func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
