package manualpress

// StopMode controls how [Interleave] handles sources of unequal length.
type StopMode int

const (
	// StopLongest runs until the longest source is exhausted; shorter
	// sources contribute blank cells past their end.
	StopLongest StopMode = iota
	// StopShortest stops as soon as any source runs out.
	StopShortest
)

// DuplicatePages repeats each page n times in place, so that every
// cell of a sheet shows the same source page. Composing the result
// with PerSheet == n yields one sheet per original page, ready to be
// cut into n identical copies.
func DuplicatePages(pages []Page, n int) []Page {
	if n < 1 {
		n = 1
	}
	out := make([]Page, 0, len(pages)*n)
	for _, p := range pages {
		for i := 0; i < n; i++ {
			out = append(out, p)
		}
	}
	return out
}

// Interleave merges several page sequences round-robin: page i of every
// source in turn, so that composing with PerSheet == len(sources) puts
// each source in its own fixed cell on every sheet.
//
// With StopLongest, sources that run out early are padded with blank
// placeholders so the remaining sources keep their cells.
func Interleave(sources [][]Page, stop StopMode) []Page {
	if len(sources) == 0 {
		return nil
	}

	total := len(sources[0])
	for _, src := range sources[1:] {
		if stop == StopShortest {
			if len(src) < total {
				total = len(src)
			}
		} else if len(src) > total {
			total = len(src)
		}
	}

	out := make([]Page, 0, total*len(sources))
	for i := 0; i < total; i++ {
		for _, src := range sources {
			if i < len(src) {
				out = append(out, src[i])
			} else {
				out = append(out, BlankPage())
			}
		}
	}
	return out
}
