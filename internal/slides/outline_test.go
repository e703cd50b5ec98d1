// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutlineTwoSlides(t *testing.T) {
	got := ParseOutlineText("# Title\n\n## Slide One\n- point a\n  - point b\n")

	require.Len(t, got, 2)

	assert.Equal(t, "Title", got[0].Title)
	assert.True(t, got[0].IsTitle)
	assert.Empty(t, got[0].Bullets)

	assert.Equal(t, "Slide One", got[1].Title)
	assert.False(t, got[1].IsTitle)
	assert.Equal(t, []Bullet{{Level: 0, Text: "point a"}, {Level: 1, Text: "point b"}}, got[1].Bullets)
}

func TestParseOutlineNoHeadings(t *testing.T) {
	got := ParseOutlineText("just some text\nmore text\n\n- stray bullet\n")
	assert.Empty(t, got)
}

func TestParseOutlineSlideCountMatchesHeadings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "title only", input: "# Deck\n", want: 1},
		{name: "title and three slides", input: "# D\n## a\n## b\n## c\n", want: 4},
		{name: "slides without title", input: "## a\ntext\n## b\n", want: 2},
		{name: "empty input", input: "", want: 0},
		{name: "blank lines only", input: "\n\n\n", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, ParseOutlineText(tt.input), tt.want)
		})
	}
}

func TestParseOutlineTitleSlideDiscardsBody(t *testing.T) {
	got := ParseOutlineText("# Big Deck\n- this is ignored\nso is this\n## Real\n- kept\n")

	require.Len(t, got, 2)
	assert.True(t, got[0].IsTitle)
	assert.Empty(t, got[0].Bullets)
	assert.Equal(t, []Bullet{{Level: 0, Text: "kept"}}, got[1].Bullets)
}

func TestParseOutlineBulletLevels(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		level  int
		text   string
	}{
		{name: "no indent", line: "- a", level: 0, text: "a"},
		{name: "two spaces", line: "  - a", level: 1, text: "a"},
		{name: "four spaces", line: "    - a", level: 2, text: "a"},
		{name: "odd indent rounds down", line: "   - a", level: 1, text: "a"},
		{name: "clamped at four", line: "            - a", level: 4, text: "a"},
		{name: "asterisk marker", line: "* a", level: 0, text: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseOutline([]string{"## S", tt.line})
			require.Len(t, got, 1)
			require.Len(t, got[0].Bullets, 1)
			assert.Equal(t, Bullet{Level: tt.level, Text: tt.text}, got[0].Bullets[0])
		})
	}
}

func TestParseOutlineImplicitBullets(t *testing.T) {
	got := ParseOutlineText("## Notes\nplain sentence\n1. looks numbered\n")

	require.Len(t, got, 1)
	// Numbered-list syntax is not special here; it falls through to the
	// implicit level-0 bullet rule.
	assert.Equal(t, []Bullet{
		{Level: 0, Text: "plain sentence"},
		{Level: 0, Text: "1. looks numbered"},
	}, got[0].Bullets)
}

func TestParseOutlineBlankLinesIgnored(t *testing.T) {
	got := ParseOutlineText("## A\n\n- one\n\n\n- two\n\n")
	require.Len(t, got, 1)
	assert.Len(t, got[0].Bullets, 2)
}

func TestParseOutlineEmptyContentSlide(t *testing.T) {
	got := ParseOutlineText("## Lonely\n## Also Lonely\n")

	require.Len(t, got, 2)
	assert.Empty(t, got[0].Bullets)
	assert.Empty(t, got[1].Bullets)
}

func TestParseOutlineSecondTopLevelHeadingIsContent(t *testing.T) {
	got := ParseOutlineText("# Deck\n## One\n# Appendix\n- extra\n")

	require.Len(t, got, 3)
	assert.True(t, got[0].IsTitle)
	assert.False(t, got[2].IsTitle, "only the first top-level heading makes a title slide")
	assert.Equal(t, "Appendix", got[2].Title)
	assert.Equal(t, []Bullet{{Level: 0, Text: "extra"}}, got[2].Bullets)
}

func TestParseOutlineLeadingBulletsAttachToFirstContentSlide(t *testing.T) {
	// Bullets before any heading accumulate; flush only resets on emit, so
	// they ride along into the first content slide.
	got := ParseOutlineText("- early\n## First\n- own\n")

	require.Len(t, got, 1)
	assert.Equal(t, []Bullet{{Level: 0, Text: "early"}, {Level: 0, Text: "own"}}, got[0].Bullets)
}

func TestParseOutlineNeverPanics(t *testing.T) {
	inputs := []string{
		"#",
		"##",
		"#\t",
		"- ",
		"* ",
		"   ",
		"#  ",
		strings.Repeat("#", 100),
		"## " + strings.Repeat("x", 10000),
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { ParseOutlineText(in) }, "input %q", in)
	}
}
