// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package slides converts between a lightweight markdown outline and
// PowerPoint presentations: a line-scan parser that turns outlines into slide
// records, a writer that persists records as a .pptx package, and readers for
// text and metadata of existing presentations.
package slides

import "strings"

// maxBulletLevel caps outline depth; deeper indentation clamps here.
const maxBulletLevel = 4

// Bullet is one leveled line of body text on a slide.
type Bullet struct {
	Level int
	Text  string
}

// Slide is one emitted slide record. A title slide carries no bullets and is
// rendered on the title layout; every other slide is a content slide.
type Slide struct {
	Title   string
	Bullets []Bullet
	IsTitle bool
}

// outlineState is the parser accumulator. It is threaded explicitly through
// flush rather than captured by a closure.
type outlineState struct {
	seenTop bool // a top-level heading has been consumed
	open    bool // a slide is accumulating
	isTitle bool // the open slide came from the first top-level heading
	title   string
	bullets []Bullet
}

// flush finalizes the open slide and resets the accumulator. With no slide
// open it is a no-op and returns nil; in particular the bullet accumulator is
// NOT cleared, so body lines seen before the first heading attach to the first
// content slide. The slide opened by the first top-level heading emits with
// its bullets discarded.
func flush(st *outlineState) *Slide {
	if !st.open {
		return nil
	}
	s := &Slide{Title: st.title}
	if st.isTitle {
		s.IsTitle = true
	} else {
		s.Bullets = st.bullets
	}
	st.open = false
	st.isTitle = false
	st.title = ""
	st.bullets = nil
	return s
}

// ParseOutline scans outline lines and returns the slide records in order.
// The scan is a single forward pass and is total: any input produces a
// defined, possibly empty, slide sequence. A document with no headings
// produces no slides.
//
// Classification per line, first match wins:
//
//	"# "       flush; open the title slide (first occurrence) or a content slide
//	"## "      flush; open a content slide
//	"- ", "* " bullet at level min(indent/2, 4), indent from the raw line
//	non-blank  implicit level-0 bullet, only while a slide is open
//	blank      ignored
func ParseOutline(lines []string) []Slide {
	var out []Slide
	st := &outlineState{}

	for _, line := range lines {
		line = strings.TrimRight(line, "\r\n")
		stripped := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(stripped, "# "):
			if s := flush(st); s != nil {
				out = append(out, *s)
			}
			st.open = true
			st.title = strings.TrimSpace(stripped[2:])
			if !st.seenTop {
				st.seenTop = true
				st.isTitle = true
			}

		case strings.HasPrefix(stripped, "## "):
			if s := flush(st); s != nil {
				out = append(out, *s)
			}
			st.open = true
			st.title = strings.TrimSpace(stripped[3:])

		case strings.HasPrefix(stripped, "- ") || strings.HasPrefix(stripped, "* "):
			indent := len(line) - len(strings.TrimLeft(line, " \t"))
			level := indent / 2
			if level > maxBulletLevel {
				level = maxBulletLevel
			}
			st.bullets = append(st.bullets, Bullet{Level: level, Text: strings.TrimSpace(stripped[2:])})

		case stripped != "" && st.open:
			st.bullets = append(st.bullets, Bullet{Level: 0, Text: stripped})
		}
	}

	if s := flush(st); s != nil {
		out = append(out, *s)
	}
	return out
}

// ParseOutlineText splits text into lines and parses it as an outline.
func ParseOutlineText(text string) []Slide {
	return ParseOutline(strings.Split(strings.TrimSpace(text), "\n"))
}
