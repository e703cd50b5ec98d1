// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfdoc wraps PDF reading: text extraction, metadata, table
// reconstruction, and page search.
package pdfdoc

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParsePageRange expands a page specification like "1-5,7,9-11" into sorted,
// deduplicated 0-based page indices. Page numbers are 1-based and range ends
// inclusive; pages beyond total are dropped. An empty spec selects every page.
func ParsePageRange(spec string, total int) ([]int, error) {
	if strings.TrimSpace(spec) == "" {
		all := make([]int, total)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}

	seen := make(map[int]bool)
	for _, term := range strings.Split(spec, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			return nil, fmt.Errorf("empty term in page range %q", spec)
		}

		if lo, hi, ok := strings.Cut(term, "-"); ok {
			start, err := strconv.Atoi(strings.TrimSpace(lo))
			if err != nil {
				return nil, fmt.Errorf("bad page range %q: %w", term, err)
			}
			end, err := strconv.Atoi(strings.TrimSpace(hi))
			if err != nil {
				return nil, fmt.Errorf("bad page range %q: %w", term, err)
			}
			for p := start - 1; p < end && p < total; p++ {
				if p >= 0 {
					seen[p] = true
				}
			}
			continue
		}

		p, err := strconv.Atoi(term)
		if err != nil {
			return nil, fmt.Errorf("bad page number %q: %w", term, err)
		}
		if p >= 1 && p <= total {
			seen[p-1] = true
		}
	}

	pages := make([]int, 0, len(seen))
	for p := range seen {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages, nil
}
