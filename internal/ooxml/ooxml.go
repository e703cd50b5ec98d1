// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ooxml reads parts out of Office Open XML packages. A .docx, .pptx,
// or .xlsx file is a ZIP archive of XML parts; this package gives named access
// to those parts and decodes the shared docProps/core.xml metadata part.
package ooxml

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
)

// CorePropsPart is the package-relative name of the core properties part.
const CorePropsPart = "docProps/core.xml"

// Package is an open OOXML package. Close it when done.
type Package struct {
	zr *zip.ReadCloser
}

// Open opens the file at path as an OOXML package.
func Open(path string) (*Package, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening package %s: %w", path, err)
	}
	return &Package{zr: zr}, nil
}

// Close releases the underlying archive.
func (p *Package) Close() error {
	return p.zr.Close()
}

// Has reports whether the package contains a part with the given name.
func (p *Package) Has(name string) bool {
	for _, f := range p.zr.File {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Part returns the raw bytes of the named part.
func (p *Package) Part(name string) ([]byte, error) {
	for _, f := range p.zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening part %s: %w", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("reading part %s: %w", name, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("part %s not found in package", name)
}

// CoreProperties holds the Dublin Core metadata every OOXML format shares.
// Created and Modified are W3CDTF timestamps as stored, not parsed.
type CoreProperties struct {
	Title    string `xml:"title" json:"title" yaml:"title"`
	Creator  string `xml:"creator" json:"author" yaml:"author"`
	Subject  string `xml:"subject" json:"subject,omitempty" yaml:"subject,omitempty"`
	Created  string `xml:"created" json:"created" yaml:"created"`
	Modified string `xml:"modified" json:"modified" yaml:"modified"`
}

// CoreProperties decodes docProps/core.xml. A package with no core properties
// part yields the zero value, not an error.
func (p *Package) CoreProperties() (CoreProperties, error) {
	var props CoreProperties
	if !p.Has(CorePropsPart) {
		return props, nil
	}
	data, err := p.Part(CorePropsPart)
	if err != nil {
		return props, err
	}
	if err := xml.Unmarshal(data, &props); err != nil {
		return props, fmt.Errorf("decoding core properties: %w", err)
	}
	return props, nil
}
