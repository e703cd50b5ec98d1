// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageRange(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		total   int
		want    []int
		wantErr bool
	}{
		{name: "empty selects all", spec: "", total: 3, want: []int{0, 1, 2}},
		{name: "whitespace selects all", spec: "  ", total: 2, want: []int{0, 1}},
		{name: "single page", spec: "2", total: 5, want: []int{1}},
		{name: "simple range", spec: "1-3", total: 5, want: []int{0, 1, 2}},
		{name: "mixed terms", spec: "1-2,4", total: 5, want: []int{0, 1, 3}},
		{name: "overlapping terms dedupe", spec: "1-3,2-4", total: 5, want: []int{0, 1, 2, 3}},
		{name: "unordered input sorts", spec: "5,1", total: 5, want: []int{0, 4}},
		{name: "range clipped to total", spec: "2-10", total: 4, want: []int{1, 2, 3}},
		{name: "page beyond total dropped", spec: "9", total: 4, want: []int{}},
		{name: "zero page dropped", spec: "0", total: 4, want: []int{}},
		{name: "spaces around terms", spec: " 1 , 3 ", total: 4, want: []int{0, 2}},
		{name: "garbage page", spec: "x", total: 4, wantErr: true},
		{name: "garbage range", spec: "1-x", total: 4, wantErr: true},
		{name: "dangling comma", spec: "1,", total: 4, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePageRange(tt.spec, tt.total)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, got)
			assert.IsIncreasing(t, got)
		})
	}
}

func TestParsePageRangeZeroTotal(t *testing.T) {
	got, err := ParsePageRange("", 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}
