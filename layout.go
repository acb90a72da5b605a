package manualpress

import "strings"

// PointsPerInch is the number of PDF points in one inch.
const PointsPerInch = 72.0

// SheetSize represents output sheet dimensions in PDF points,
// in portrait orientation.
type SheetSize struct {
	Width  float64 // Width in points.
	Height float64 // Height in points.
}

// Standard sheet sizes.
var (
	Letter  = SheetSize{Width: 612, Height: 792}
	Legal   = SheetSize{Width: 612, Height: 1008}
	Tabloid = SheetSize{Width: 792, Height: 1224}
	A3      = SheetSize{Width: 842, Height: 1191}
	A4      = SheetSize{Width: 595, Height: 842}
	A5      = SheetSize{Width: 420, Height: 595}
)

var sheetSizesByName = map[string]SheetSize{
	"letter":  Letter,
	"legal":   Legal,
	"tabloid": Tabloid,
	"a3":      A3,
	"a4":      A4,
	"a5":      A5,
}

// SheetSizeByName looks up a standard sheet size by its common name
// ("letter", "a4", ...). The lookup is case-insensitive.
func SheetSizeByName(name string) (SheetSize, bool) {
	s, ok := sheetSizesByName[strings.ToLower(name)]
	return s, ok
}

// Orientation represents the output sheet orientation.
type Orientation int

const (
	// Portrait is the default vertical orientation.
	Portrait Orientation = iota
	// Landscape swaps the sheet's width and height.
	Landscape
)

// Stacking selects the grid arrangement for 2-up layouts.
type Stacking int

const (
	// StackAuto picks the arrangement (side by side or stacked) whose
	// cell aspect ratio deviates least from the mean source aspect
	// ratio. Ties prefer side by side.
	StackAuto Stacking = iota
	// StackColumns forces two cells side by side (1 row x 2 columns).
	StackColumns
	// StackRows forces two cells on top of each other (2 rows x 1 column).
	StackRows
)

// Align selects the vertical alignment of a page inside its cell when
// the scaled page is shorter than the cell. Horizontal placement is
// always centered.
type Align int

const (
	AlignCenter Align = iota
	AlignTop
	AlignBottom
)

// LayoutSpec describes the target n-up layout.
//
// A zero-value field resolves to its default: 2 cells per sheet,
// Letter sheet, portrait, no margins or gutters, zoom 1.0, centered
// alignment.
type LayoutSpec struct {
	// PerSheet is the number of cells on each output sheet: 2 or 4.
	PerSheet int

	// Sheet is the output sheet size in points. Defaults to Letter.
	Sheet SheetSize

	// Orientation specifies portrait or landscape sheets.
	Orientation Orientation

	// MarginOuter is the outer margin on all four sheet edges, in points.
	MarginOuter float64

	// GutterX is the horizontal spacing between adjacent cells, in points.
	GutterX float64

	// GutterY is the vertical spacing between adjacent cells, in points.
	// Only meaningful for layouts with more than one row.
	GutterY float64

	// Stacking selects the 2-up grid arrangement. Ignored for 4-up,
	// which is always a 2x2 grid.
	Stacking Stacking

	// Zoom shrinks pages inside their cells. Values in (0, 1] scale the
	// best-fit size down; values above 1 are clamped so content never
	// exceeds its cell. Zero resolves to 1.0.
	Zoom float64

	// Align is the vertical alignment inside each cell.
	Align Align
}

// DefaultLayoutSpec returns a LayoutSpec with the documented defaults.
func DefaultLayoutSpec() LayoutSpec {
	return LayoutSpec{
		PerSheet: 2,
		Sheet:    Letter,
		Zoom:     1.0,
	}
}

// resolved returns a LayoutSpec with all zero values replaced by defaults.
func (s LayoutSpec) resolved() LayoutSpec {
	r := s
	if r.PerSheet == 0 {
		r.PerSheet = 2
	}
	if r.Sheet == (SheetSize{}) {
		r.Sheet = Letter
	}
	if r.Zoom == 0 {
		r.Zoom = 1.0
	}
	return r
}

// sheetDims returns the output sheet width and height in points,
// accounting for orientation.
func (s LayoutSpec) sheetDims() (width, height float64) {
	if s.Orientation == Landscape {
		return s.Sheet.Height, s.Sheet.Width
	}
	return s.Sheet.Width, s.Sheet.Height
}
