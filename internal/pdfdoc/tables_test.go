// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfdoc

import (
	"reflect"
	"testing"

	pdflib "github.com/ledongthuc/pdf"
)

// frag builds a positioned text fragment; width approximates half the font
// size per character, which is plenty for the clustering heuristic.
func frag(s string, x, size float64) pdflib.Text {
	return pdflib.Text{S: s, X: x, W: float64(len(s)) * size / 2, FontSize: size}
}

func TestSplitColumns(t *testing.T) {
	tests := []struct {
		name  string
		texts []pdflib.Text
		want  []string
	}{
		{
			name: "wide gaps split cells",
			texts: []pdflib.Text{
				frag("Name", 0, 10),
				frag("Qty", 100, 10),
				frag("Price", 200, 10),
			},
			want: []string{"Name", "Qty", "Price"},
		},
		{
			name: "adjacent fragments merge",
			texts: []pdflib.Text{
				frag("Hel", 0, 10),
				frag("lo", 15, 10),
			},
			want: []string{"Hello"},
		},
		{
			name: "unsorted input ordered by x",
			texts: []pdflib.Text{
				frag("right", 300, 10),
				frag("left", 0, 10),
			},
			want: []string{"left", "right"},
		},
		{
			name:  "empty line",
			texts: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitColumns(tt.texts)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitColumns = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderCSVRows(t *testing.T) {
	tables := []Table{
		{Page: 2, Rows: [][]string{{"a", "b"}, {"c", "d"}}},
	}
	records := RenderCSVRows(tables)

	want := [][]string{
		{"=== Page 2 ==="},
		{"a", "b"},
		{"c", "d"},
		{},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("records = %v, want %v", records, want)
	}
}

func TestClampRuneStart(t *testing.T) {
	s := "héllo"
	tests := []struct {
		in   int
		want int
	}{
		{in: -5, want: 0},
		{in: 0, want: 0},
		{in: 2, want: 1}, // inside the two-byte é, backs up
		{in: 100, want: len(s)},
	}
	for _, tt := range tests {
		if got := clampRuneStart(s, tt.in); got != tt.want {
			t.Errorf("clampRuneStart(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
