// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfdoc

import (
	"fmt"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Info describes a PDF file.
type Info struct {
	Path     string
	Pages    int
	Valid    bool
	Metadata map[string]string
}

// GetInfo reads page count and validity via pdfcpu and the document Info
// dictionary via the pdf reader. A file that fails validation still reports
// whatever metadata could be read.
func GetInfo(path string) (Info, error) {
	pages, err := api.PageCountFile(path)
	if err != nil {
		return Info{}, fmt.Errorf("counting pages: %w", err)
	}

	info := Info{
		Path:     path,
		Pages:    pages,
		Valid:    api.ValidateFile(path, model.NewDefaultConfiguration()) == nil,
		Metadata: map[string]string{},
	}

	f, reader, err := pdflib.Open(path)
	if err != nil {
		// Page count already succeeded; report what we have.
		return info, nil
	}
	defer f.Close()

	dict := reader.Trailer().Key("Info")
	if dict.Kind() == pdflib.Dict {
		for _, key := range dict.Keys() {
			v := dict.Key(key)
			switch v.Kind() {
			case pdflib.String:
				info.Metadata[key] = v.Text()
			case pdflib.Name:
				info.Metadata[key] = v.Name()
			default:
				info.Metadata[key] = v.String()
			}
		}
	}

	return info, nil
}

// Render formats the info the way the CLI prints it.
func (i Info) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "File: %s\n", i.Path)
	fmt.Fprintf(&b, "Pages: %d\n", i.Pages)
	fmt.Fprintf(&b, "Valid: %t\n", i.Valid)
	b.WriteString("Metadata:\n")
	keys := make([]string, 0, len(i.Metadata))
	for k := range i.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "  %s: %s\n", k, i.Metadata[k])
	}
	return strings.TrimRight(b.String(), "\n")
}
