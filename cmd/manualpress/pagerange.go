package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parsePageRange expands a page selection like "1-3,7" into 1-based
// page numbers, validated against the document's page count. An empty
// selection means every page. Duplicates collapse to the first
// occurrence.
func parsePageRange(sel string, total int) ([]int, error) {
	if sel == "" {
		pages := make([]int, total)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages, nil
	}

	var pages []int
	seen := make(map[int]bool)
	add := func(p int) error {
		if p < 1 || p > total {
			return fmt.Errorf("page %d out of bounds: document has %d pages", p, total)
		}
		if !seen[p] {
			pages = append(pages, p)
			seen[p] = true
		}
		return nil
	}

	for _, part := range strings.Split(sel, ",") {
		part = strings.TrimSpace(part)
		first, last, isRange := strings.Cut(part, "-")

		start, err := strconv.Atoi(strings.TrimSpace(first))
		if err != nil {
			return nil, fmt.Errorf("not a page number: %q", first)
		}
		end := start
		if isRange {
			end, err = strconv.Atoi(strings.TrimSpace(last))
			if err != nil {
				return nil, fmt.Errorf("not a page number: %q", last)
			}
			if end < start {
				return nil, fmt.Errorf("reversed page range %q", part)
			}
		}
		for p := start; p <= end; p++ {
			if err := add(p); err != nil {
				return nil, err
			}
		}
	}

	return pages, nil
}
