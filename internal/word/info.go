// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package word

import (
	"github.com/fumiama/go-docx"

	"github.com/pdiddy/office-tools/internal/ooxml"
)

// Info describes a Word document: core metadata plus structure counts.
type Info struct {
	Title      string `json:"title" yaml:"title"`
	Author     string `json:"author" yaml:"author"`
	Created    string `json:"created" yaml:"created"`
	Modified   string `json:"modified" yaml:"modified"`
	Paragraphs int    `json:"paragraphs" yaml:"paragraphs"`
	Tables     int    `json:"tables" yaml:"tables"`
}

// GetInfo reads document metadata and counts body-level paragraphs and tables.
func GetInfo(path string) (Info, error) {
	doc, err := open(path)
	if err != nil {
		return Info{}, err
	}

	var info Info
	for _, item := range doc.Document.Body.Items {
		switch item.(type) {
		case *docx.Paragraph:
			info.Paragraphs++
		case *docx.Table:
			info.Tables++
		}
	}

	pkg, err := ooxml.Open(path)
	if err != nil {
		return Info{}, err
	}
	defer pkg.Close()

	props, err := pkg.CoreProperties()
	if err != nil {
		return Info{}, err
	}
	info.Title = props.Title
	info.Author = props.Creator
	info.Created = props.Created
	info.Modified = props.Modified

	return info, nil
}
