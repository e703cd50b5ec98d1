// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"fmt"

	"github.com/pdiddy/office-tools/internal/ooxml"
)

// titleTruncateRunes bounds the per-slide title shown in overviews.
const titleTruncateRunes = 50

// SlideOverview is one row of the per-slide summary in Info.
type SlideOverview struct {
	Number int    `json:"number" yaml:"number"`
	Title  string `json:"title" yaml:"title"`
}

// Info describes a presentation: core metadata plus slide structure.
type Info struct {
	Title    string          `json:"title" yaml:"title"`
	Author   string          `json:"author" yaml:"author"`
	Created  string          `json:"created" yaml:"created"`
	Modified string          `json:"modified" yaml:"modified"`
	Slides   int             `json:"slides" yaml:"slides"`
	Details  []SlideOverview `json:"slide_details" yaml:"slide_details"`
}

// GetInfo reads presentation metadata and a per-slide overview. The overview
// title is the first text paragraph on the slide, truncated.
func GetInfo(path string) (Info, error) {
	pkg, err := ooxml.Open(path)
	if err != nil {
		return Info{}, err
	}
	defer pkg.Close()

	props, err := pkg.CoreProperties()
	if err != nil {
		return Info{}, err
	}

	info := Info{
		Title:    props.Title,
		Author:   props.Creator,
		Created:  props.Created,
		Modified: props.Modified,
	}

	for n := 1; ; n++ {
		name := fmt.Sprintf("ppt/slides/slide%d.xml", n)
		if !pkg.Has(name) {
			break
		}
		data, err := pkg.Part(name)
		if err != nil {
			return Info{}, err
		}
		text, err := textFromSlideXML(data)
		if err != nil {
			return Info{}, fmt.Errorf("slide %d: %w", n, err)
		}
		info.Details = append(info.Details, SlideOverview{
			Number: n,
			Title:  truncateRunes(firstLine(text), titleTruncateRunes),
		})
	}
	info.Slides = len(info.Details)

	return info, nil
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
