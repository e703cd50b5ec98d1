// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package word

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Markdown converts to styled paragraphs: ATX headings (levels 1-3) become
// Heading styles, bullet list items List Bullet, ordered list items
// List Number, everything else plain paragraphs. Deeper headings fall back to
// plain paragraphs, matching the converter's original behavior.

// styled paragraph style IDs in the default document template.
const (
	styleTitle      = "Title"
	styleListBullet = "ListBullet"
	styleListNumber = "ListNumber"
)

// block is one paragraph to add to the output document.
type block struct {
	style string // paragraph style ID; empty for a plain paragraph
	text  string
}

// FromMarkdown builds a Word document at docxPath from the markdown file at
// mdPath.
func FromMarkdown(mdPath, docxPath string) error {
	src, err := os.ReadFile(mdPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", mdPath, err)
	}
	return buildDocument(docxPath, markdownBlocks(src))
}

// markdownBlocks parses markdown and flattens the block structure into styled
// paragraphs.
func markdownBlocks(src []byte) []block {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var blocks []block
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			style := ""
			if node.Level <= 3 {
				style = fmt.Sprintf("Heading%d", node.Level)
			}
			blocks = append(blocks, block{style: style, text: string(node.Text(src))})
		case *ast.List:
			blocks = append(blocks, listBlocks(node, src)...)
		default:
			if t := blockText(n, src); t != "" {
				blocks = append(blocks, block{text: t})
			}
		}
	}
	return blocks
}

// listBlocks flattens a list into one styled paragraph per item. Nested lists
// follow their parent item and keep their own ordered/unordered style.
func listBlocks(l *ast.List, src []byte) []block {
	style := styleListBullet
	if l.IsOrdered() {
		style = styleListNumber
	}

	var blocks []block
	for item := l.FirstChild(); item != nil; item = item.NextSibling() {
		var nested []block
		var buf strings.Builder
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if sub, ok := c.(*ast.List); ok {
				nested = append(nested, listBlocks(sub, src)...)
				continue
			}
			if t := blockText(c, src); t != "" {
				if buf.Len() > 0 {
					buf.WriteString(" ")
				}
				buf.WriteString(t)
			}
		}
		if buf.Len() > 0 {
			blocks = append(blocks, block{style: style, text: buf.String()})
		}
		blocks = append(blocks, nested...)
	}
	return blocks
}

// blockText gets the text content of a goldmark AST node. Block nodes with
// source lines use those directly; everything else collects nested inlines.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(blockText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
