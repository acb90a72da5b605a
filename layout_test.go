package manualpress

import "testing"

func TestSheetSizeByName(t *testing.T) {
	tests := []struct {
		name string
		want SheetSize
		ok   bool
	}{
		{"letter", Letter, true},
		{"Letter", Letter, true},
		{"A4", A4, true},
		{"tabloid", Tabloid, true},
		{"b5", SheetSize{}, false},
		{"", SheetSize{}, false},
	}
	for _, tt := range tests {
		got, ok := SheetSizeByName(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("SheetSizeByName(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStandardSheetPoints(t *testing.T) {
	// Letter is 8.5x11 in, A4 is 595x842 pt by definition.
	if Letter.Width != 8.5*PointsPerInch || Letter.Height != 11*PointsPerInch {
		t.Errorf("letter = %gx%g pt", Letter.Width, Letter.Height)
	}
	if A4.Width != 595 || A4.Height != 842 {
		t.Errorf("a4 = %gx%g pt", A4.Width, A4.Height)
	}
}

func TestLayoutSpecResolved(t *testing.T) {
	r := LayoutSpec{}.resolved()
	if r.PerSheet != 2 {
		t.Errorf("default PerSheet = %d, want 2", r.PerSheet)
	}
	if r.Sheet != Letter {
		t.Errorf("default Sheet = %v, want Letter", r.Sheet)
	}
	if r.Zoom != 1.0 {
		t.Errorf("default Zoom = %v, want 1.0", r.Zoom)
	}

	explicit := LayoutSpec{PerSheet: 4, Sheet: A4, Zoom: 0.8, MarginOuter: 18}
	r = explicit.resolved()
	if r != explicit {
		t.Errorf("resolved overwrote explicit values: %+v", r)
	}
}

func TestSheetDims(t *testing.T) {
	spec := LayoutSpec{Sheet: Letter}
	w, h := spec.sheetDims()
	if w != 612 || h != 792 {
		t.Errorf("portrait = %gx%g, want 612x792", w, h)
	}

	spec.Orientation = Landscape
	w, h = spec.sheetDims()
	if w != 792 || h != 612 {
		t.Errorf("landscape = %gx%g, want 792x612", w, h)
	}
}

func TestNormalizeRotation(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 0}, {90, 90}, {180, 180}, {270, 270},
		{360, 0}, {450, 90}, {-90, 270}, {-270, 90},
	}
	for _, tt := range tests {
		if got := normalizeRotation(tt.in); got != tt.want {
			t.Errorf("normalizeRotation(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
