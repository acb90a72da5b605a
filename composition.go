package manualpress

// Rect is a placement rectangle on an output sheet, in points, with a
// top-left origin.
type Rect struct {
	X, Y float64 // Top-left corner relative to the sheet.
	W, H float64
}

// Grid is the row/column shape of an output sheet.
type Grid struct {
	Rows int
	Cols int
}

// Cell is one filled grid slot: the index of the source page in the
// input sequence and the rectangle it is drawn into.
type Cell struct {
	Source int
	Dest   Rect
}

// OutputSheet is one page of the composed document. Cells appear in
// reading order (left to right, top to bottom); trailing grid slots of
// the final sheet may be absent when the input ran out.
type OutputSheet struct {
	Cells []Cell
}

// Composition is the full placement plan produced by [Compose]. It
// references source pages by index only; rendering it requires the same
// page sequence that was composed.
type Composition struct {
	// Width and Height are the output sheet dimensions in points.
	Width  float64
	Height float64

	// Grid is the cell arrangement shared by every sheet.
	Grid Grid

	// Sheets holds one entry per output page.
	Sheets []OutputSheet
}

// PageCount returns the number of output sheets.
func (c *Composition) PageCount() int {
	return len(c.Sheets)
}
