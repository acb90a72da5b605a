package manualpress

import (
	"fmt"
	"math"
)

// Compose arranges pages into a 2-up or 4-up grid according to spec.
//
// Pages are placed in reading order, consecutive groups of
// spec.PerSheet pages per output sheet; the final sheet's unused cells
// stay empty. Each page is scaled uniformly to fit its cell (aspect
// ratio preserved, never cropped) and centered horizontally, with
// vertical alignment per spec.Align.
//
// Compose validates its inputs before any placement work and never
// returns a partial result. It is a pure function with no side effects
// and is safe for concurrent use.
func Compose(pages []Page, spec LayoutSpec) (*Composition, error) {
	if len(pages) == 0 {
		return nil, ErrEmptySource
	}

	r := spec.resolved()
	if err := validateSpec(r, pages); err != nil {
		return nil, err
	}

	sheetW, sheetH := r.sheetDims()
	grid, cellW, cellH, err := chooseGrid(r, sheetW, sheetH, pages)
	if err != nil {
		return nil, err
	}

	comp := &Composition{
		Width:  sheetW,
		Height: sheetH,
		Grid:   grid,
		Sheets: make([]OutputSheet, 0, (len(pages)+r.PerSheet-1)/r.PerSheet),
	}

	for start := 0; start < len(pages); start += r.PerSheet {
		sheet := OutputSheet{}
		for slot := 0; slot < r.PerSheet && start+slot < len(pages); slot++ {
			row := slot / grid.Cols
			col := slot % grid.Cols
			cell := Rect{
				X: r.MarginOuter + float64(col)*(cellW+r.GutterX),
				Y: r.MarginOuter + float64(row)*(cellH+r.GutterY),
				W: cellW,
				H: cellH,
			}
			sheet.Cells = append(sheet.Cells, Cell{
				Source: start + slot,
				Dest:   placeInCell(pages[start+slot], cell, r.Zoom, r.Align),
			})
		}
		comp.Sheets = append(comp.Sheets, sheet)
	}

	return comp, nil
}

func validateSpec(r LayoutSpec, pages []Page) error {
	if r.PerSheet != 2 && r.PerSheet != 4 {
		return fmt.Errorf("%w: cells per sheet must be 2 or 4, got %d", ErrInvalidLayout, r.PerSheet)
	}
	if r.Sheet.Width <= 0 || r.Sheet.Height <= 0 {
		return fmt.Errorf("%w: sheet size %.4gx%.4g pt", ErrInvalidLayout, r.Sheet.Width, r.Sheet.Height)
	}
	if r.MarginOuter < 0 {
		return fmt.Errorf("%w: negative outer margin %.4g", ErrInvalidLayout, r.MarginOuter)
	}
	if r.GutterX < 0 || r.GutterY < 0 {
		return fmt.Errorf("%w: negative gutter", ErrInvalidLayout)
	}
	if r.Zoom < 0 {
		return fmt.Errorf("%w: negative zoom %.4g", ErrInvalidLayout, r.Zoom)
	}
	for i, p := range pages {
		if p.Blank() {
			continue
		}
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("%w: page %d has size %.4gx%.4g pt", ErrInvalidLayout, i, p.Width, p.Height)
		}
	}
	return nil
}

// chooseGrid determines the grid shape and cell dimensions.
//
// 4-up is always a 2x2 grid. 2-up honors the Stacking field; StackAuto
// picks the candidate whose cell aspect ratio is closest to the mean
// source aspect ratio, preferring side-by-side columns on a tie.
func chooseGrid(r LayoutSpec, sheetW, sheetH float64, pages []Page) (Grid, float64, float64, error) {
	if r.PerSheet == 4 {
		g := Grid{Rows: 2, Cols: 2}
		w, h, ok := cellDims(r, sheetW, sheetH, g)
		if !ok {
			return Grid{}, 0, 0, usableAreaError(r, g)
		}
		return g, w, h, nil
	}

	columns := Grid{Rows: 1, Cols: 2}
	rows := Grid{Rows: 2, Cols: 1}

	switch r.Stacking {
	case StackColumns:
		w, h, ok := cellDims(r, sheetW, sheetH, columns)
		if !ok {
			return Grid{}, 0, 0, usableAreaError(r, columns)
		}
		return columns, w, h, nil
	case StackRows:
		w, h, ok := cellDims(r, sheetW, sheetH, rows)
		if !ok {
			return Grid{}, 0, 0, usableAreaError(r, rows)
		}
		return rows, w, h, nil
	}

	// StackAuto: rank the two arrangements by aspect-ratio deviation.
	target := meanAspect(pages)
	best := Grid{}
	var bestW, bestH, bestDev float64
	for _, g := range []Grid{columns, rows} {
		w, h, ok := cellDims(r, sheetW, sheetH, g)
		if !ok {
			continue
		}
		dev := math.Abs(w/h - target)
		if best == (Grid{}) || dev < bestDev {
			best, bestW, bestH, bestDev = g, w, h, dev
		}
	}
	if best == (Grid{}) {
		return Grid{}, 0, 0, usableAreaError(r, columns)
	}
	return best, bestW, bestH, nil
}

// cellDims divides the usable sheet area evenly across the grid.
// ok is false when margins and gutters leave no positive area.
func cellDims(r LayoutSpec, sheetW, sheetH float64, g Grid) (w, h float64, ok bool) {
	usableW := sheetW - 2*r.MarginOuter - float64(g.Cols-1)*r.GutterX
	usableH := sheetH - 2*r.MarginOuter - float64(g.Rows-1)*r.GutterY
	if usableW <= 0 || usableH <= 0 {
		return 0, 0, false
	}
	return usableW / float64(g.Cols), usableH / float64(g.Rows), true
}

func usableAreaError(r LayoutSpec, g Grid) error {
	return fmt.Errorf("%w: margin %.4g and gutters %.4gx%.4g leave no usable area in a %dx%d grid",
		ErrInvalidLayout, r.MarginOuter, r.GutterX, r.GutterY, g.Rows, g.Cols)
}

// meanAspect returns the mean width/height ratio of the sized pages.
// A sequence of only blank placeholders yields 1.
func meanAspect(pages []Page) float64 {
	var sum float64
	var n int
	for _, p := range pages {
		if p.Blank() || p.Width <= 0 || p.Height <= 0 {
			continue
		}
		sum += p.Width / p.Height
		n++
	}
	if n == 0 {
		return 1
	}
	return sum / float64(n)
}

// placeInCell computes the destination rectangle for one page: uniform
// best-fit scale, optionally reduced by zoom but never enlarged past
// the fit, centered horizontally and aligned vertically.
//
// A blank placeholder occupies its full cell; the renderer draws
// nothing for it.
func placeInCell(p Page, cell Rect, zoom float64, align Align) Rect {
	if p.Blank() {
		return cell
	}

	fit := math.Min(cell.W/p.Width, cell.H/p.Height)
	scale := fit * zoom
	if scale > fit {
		scale = fit
	}

	w := p.Width * scale
	h := p.Height * scale

	x := cell.X + (cell.W-w)/2
	var y float64
	switch align {
	case AlignTop:
		y = cell.Y
	case AlignBottom:
		y = cell.Y + (cell.H - h)
	default:
		y = cell.Y + (cell.H-h)/2
	}

	return Rect{X: x, Y: y, W: w, H: h}
}
