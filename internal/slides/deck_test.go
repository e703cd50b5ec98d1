// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/office-tools/internal/ooxml"
)

// buildDeck writes a deck to a temp path and returns the path.
func buildDeck(t *testing.T, deck []Slide) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.pptx")
	if err := WriteDeck(path, deck); err != nil {
		t.Fatalf("WriteDeck: %v", err)
	}
	return path
}

func TestWriteDeckPackageStructure(t *testing.T) {
	path := buildDeck(t, []Slide{
		{Title: "My Deck", IsTitle: true},
		{Title: "Agenda", Bullets: []Bullet{{Level: 0, Text: "first"}, {Level: 1, Text: "second"}}},
	})

	pkg, err := ooxml.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer pkg.Close()

	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/slideLayouts/slideLayout2.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"docProps/core.xml",
		"docProps/app.xml",
	} {
		if !pkg.Has(name) {
			t.Errorf("package missing part %s", name)
		}
	}
	if pkg.Has("ppt/slides/slide3.xml") {
		t.Error("unexpected third slide part")
	}

	// Title slide references the title layout, content slide the body layout.
	rels1, err := pkg.Part("ppt/slides/_rels/slide1.xml.rels")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(rels1), "slideLayout1.xml") {
		t.Errorf("slide 1 rels = %s", rels1)
	}
	rels2, err := pkg.Part("ppt/slides/_rels/slide2.xml.rels")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(rels2), "slideLayout2.xml") {
		t.Errorf("slide 2 rels = %s", rels2)
	}
}

func TestWriteDeckRoundTrip(t *testing.T) {
	deck := ParseOutlineText("# Title\n\n## Slide One\n- point a\n  - point b\n")
	path := buildDeck(t, deck)

	text, err := ExtractText(path)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"--- Slide 1 ---", "Title", "--- Slide 2 ---", "Slide One", "point a", "point b"} {
		if !strings.Contains(text, want) {
			t.Errorf("extracted text missing %q\n%s", want, text)
		}
	}
}

func TestWriteDeckEscapesText(t *testing.T) {
	path := buildDeck(t, []Slide{
		{Title: "A <b> & \"c\"", Bullets: []Bullet{{Level: 0, Text: "1 < 2 && 3 > 2"}}},
	})

	text, err := ExtractText(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, `A <b> & "c"`) {
		t.Errorf("title not round-tripped: %s", text)
	}
	if !strings.Contains(text, "1 < 2 && 3 > 2") {
		t.Errorf("bullet not round-tripped: %s", text)
	}
}

func TestWriteDeckEmpty(t *testing.T) {
	path := buildDeck(t, nil)

	info, err := GetInfo(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Slides != 0 {
		t.Errorf("Slides = %d, want 0", info.Slides)
	}
}

func TestWriteDeckBulletLevels(t *testing.T) {
	path := buildDeck(t, []Slide{
		{Title: "S", Bullets: []Bullet{{Level: 0, Text: "a"}, {Level: 4, Text: "deep"}}},
	})

	pkg, err := ooxml.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer pkg.Close()

	data, err := pkg.Part("ppt/slides/slide1.xml")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `lvl="4"`) {
		t.Errorf("slide xml missing lvl attribute: %s", data)
	}
	if strings.Contains(string(data), `lvl="0"`) {
		t.Error("level 0 should omit the lvl attribute")
	}
}

func TestGetInfoOverview(t *testing.T) {
	long := strings.Repeat("x", 80)
	path := buildDeck(t, []Slide{
		{Title: "Front", IsTitle: true},
		{Title: long, Bullets: []Bullet{{Level: 0, Text: "body"}}},
	})

	info, err := GetInfo(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Slides != 2 {
		t.Fatalf("Slides = %d, want 2", info.Slides)
	}
	if info.Title != "Front" {
		t.Errorf("deck title = %q", info.Title)
	}
	if info.Author != "office-tools" {
		t.Errorf("author = %q", info.Author)
	}
	if info.Details[0].Title != "Front" {
		t.Errorf("slide 1 overview = %q", info.Details[0].Title)
	}
	if got := len([]rune(info.Details[1].Title)); got != titleTruncateRunes {
		t.Errorf("slide 2 overview length = %d, want %d", got, titleTruncateRunes)
	}
}
