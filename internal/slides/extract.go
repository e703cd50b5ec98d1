// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/pdiddy/office-tools/internal/ooxml"
)

// ExtractText pulls all visible text out of a presentation: one block per
// slide headed by "--- Slide N ---", with speaker notes appended as
// "[Notes: ...]" when a notes part exists for the slide.
func ExtractText(path string) (string, error) {
	pkg, err := ooxml.Open(path)
	if err != nil {
		return "", err
	}
	defer pkg.Close()

	var blocks []string
	for n := 1; ; n++ {
		slidePart := fmt.Sprintf("ppt/slides/slide%d.xml", n)
		if !pkg.Has(slidePart) {
			break
		}
		data, err := pkg.Part(slidePart)
		if err != nil {
			return "", err
		}
		text, err := textFromSlideXML(data)
		if err != nil {
			return "", fmt.Errorf("slide %d: %w", n, err)
		}

		lines := []string{fmt.Sprintf("--- Slide %d ---", n)}
		if text != "" {
			lines = append(lines, text)
		}

		notesPart := fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", n)
		if pkg.Has(notesPart) {
			data, err := pkg.Part(notesPart)
			if err != nil {
				return "", err
			}
			notes, err := textFromSlideXML(data)
			if err != nil {
				return "", fmt.Errorf("notes for slide %d: %w", n, err)
			}
			if notes != "" {
				lines = append(lines, fmt.Sprintf("[Notes: %s]", notes))
			}
		}

		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	return strings.Join(blocks, "\n\n"), nil
}

// textFromSlideXML scans a slide (or notes slide) part and joins its text
// runs: runs within one a:p concatenate, paragraphs separate with newlines.
func textFromSlideXML(data []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel

	var (
		paras   []string
		current strings.Builder
		inRun   bool
	)
	flushPara := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			paras = append(paras, s)
		}
		current.Reset()
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decoding slide xml: %w", err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "t" {
				inRun = true
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inRun = false
			case "p":
				flushPara()
			}
		case xml.CharData:
			if inRun {
				current.Write(el)
			}
		}
	}
	flushPara()

	return strings.Join(paras, "\n"), nil
}
