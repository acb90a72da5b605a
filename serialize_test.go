package manualpress

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// fixturePDF writes a minimal single-page PDF with the given media box
// and returns its path. rotate sets the page's /Rotate flag; crop, when
// non-nil, sets a /CropBox [0 0 crop[0] crop[1]].
func fixturePDF(t *testing.T, name string, w, h float64, rotate int, crop []float64) string {
	t.Helper()

	pageDict := fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %g %g] /Resources << >> /Contents 4 0 R", w, h)
	if rotate != 0 {
		pageDict += fmt.Sprintf(" /Rotate %d", rotate)
	}
	if crop != nil {
		pageDict += fmt.Sprintf(" /CropBox [0 0 %g %g]", crop[0], crop[1])
	}
	pageDict += " >>"

	content := fmt.Sprintf("0.2 g 0 0 %g %g re f\n", w/2, h/2)
	objs := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		pageDict,
		fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", len(content), content),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, o := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, o)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objs)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderPDF_EmptyComposition(t *testing.T) {
	if _, err := RenderPDF(nil, nil); !errors.Is(err, ErrSerialization) {
		t.Errorf("nil comp: err = %v, want ErrSerialization", err)
	}
	if _, err := RenderPDF(&Composition{}, nil); !errors.Is(err, ErrSerialization) {
		t.Errorf("empty comp: err = %v, want ErrSerialization", err)
	}
}

func TestRenderPDF_CellOutOfRange(t *testing.T) {
	comp := &Composition{
		Width:  612,
		Height: 792,
		Grid:   Grid{Rows: 1, Cols: 2},
		Sheets: []OutputSheet{{Cells: []Cell{{Source: 3, Dest: Rect{W: 100, H: 100}}}}},
	}
	if _, err := RenderPDF(comp, sizedPages(1, 200, 300)); !errors.Is(err, ErrSerialization) {
		t.Errorf("err = %v, want ErrSerialization", err)
	}
}

func TestRenderPDF_RoundTrip(t *testing.T) {
	src := fixturePDF(t, "src.pdf", 200, 300, 0, nil)

	doc, err := OpenDocument(src)
	if err != nil {
		t.Fatalf("OpenDocument: %v", err)
	}
	if doc.PageCount() != 1 {
		t.Fatalf("PageCount() = %d, want 1", doc.PageCount())
	}
	if p := doc.Pages()[0]; p.Width != 200 || p.Height != 300 {
		t.Fatalf("page = %gx%g, want 200x300", p.Width, p.Height)
	}

	pages := DuplicatePages(doc.Pages(), 3)
	comp, err := Compose(pages, LayoutSpec{
		PerSheet: 2,
		Sheet:    SheetSize{Width: 600, Height: 300},
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	res, err := RenderPDF(comp, pages)
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}

	out := filepath.Join(t.TempDir(), "out.pdf")
	if err := res.WriteToFile(out, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := OpenDocument(out)
	if err != nil {
		t.Fatalf("reopening output: %v", err)
	}
	if got.PageCount() != 2 {
		t.Errorf("output has %d sheets, want 2", got.PageCount())
	}
	for i, sheet := range got.Pages() {
		if !almostEqual(sheet.Width, 600, 0.5) || !almostEqual(sheet.Height, 300, 0.5) {
			t.Errorf("sheet %d = %gx%g, want 600x300", i+1, sheet.Width, sheet.Height)
		}
	}
}

// A page whose crop box is narrower than its media box must be
// measured and imported by the same box, or the rendered content is
// squeezed to the wrong aspect ratio.
func TestRenderPDF_CropBoxPage(t *testing.T) {
	src := fixturePDF(t, "cropped.pdf", 612, 792, 0, []float64{306, 792})

	doc, err := OpenDocument(src)
	if err != nil {
		t.Fatalf("OpenDocument: %v", err)
	}
	p := doc.Pages()[0]
	if p.Width != 306 || p.Height != 792 {
		t.Fatalf("page = %gx%g, want crop box 306x792", p.Width, p.Height)
	}

	pages := doc.Pages()
	comp, err := Compose(pages, LayoutSpec{PerSheet: 2, Sheet: Letter})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	dest := comp.Sheets[0].Cells[0].Dest
	if !almostEqual(dest.W/dest.H, 306.0/792.0, 1e-9) {
		t.Fatalf("destRect aspect = %g, want %g", dest.W/dest.H, 306.0/792.0)
	}

	res, err := RenderPDF(comp, pages)
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	out := filepath.Join(t.TempDir(), "out.pdf")
	if err := res.WriteToFile(out, 0o644); err != nil {
		t.Fatal(err)
	}
	if got, err := OpenDocument(out); err != nil {
		t.Fatalf("reopening output: %v", err)
	} else if got.PageCount() != 1 {
		t.Errorf("output has %d sheets, want 1", got.PageCount())
	}
}

func TestRenderPDF_RotatedPage(t *testing.T) {
	src := fixturePDF(t, "rotated.pdf", 612, 792, 90, nil)

	doc, err := OpenDocument(src)
	if err != nil {
		t.Fatalf("OpenDocument: %v", err)
	}
	p := doc.Pages()[0]
	if p.Width != 792 || p.Height != 612 || p.Rotation != 90 {
		t.Fatalf("page = %gx%g rot %d, want 792x612 rot 90", p.Width, p.Height, p.Rotation)
	}

	pages := doc.Pages()
	comp, err := Compose(pages, LayoutSpec{
		PerSheet:    2,
		Sheet:       Letter,
		Orientation: Landscape,
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	res, err := RenderPDF(comp, pages)
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}

	out := filepath.Join(t.TempDir(), "out.pdf")
	if err := res.WriteToFile(out, 0o644); err != nil {
		t.Fatal(err)
	}
	if got, err := OpenDocument(out); err != nil {
		t.Fatalf("reopening output: %v", err)
	} else if got.PageCount() != 1 {
		t.Errorf("output has %d sheets, want 1", got.PageCount())
	}
}

// Blank placeholders draw nothing, so a blank-only composition needs no
// source files and still serializes to a valid document.
func TestRenderPDF_BlankSheets(t *testing.T) {
	pages := []Page{BlankPage(), BlankPage(), BlankPage()}
	comp, err := Compose(pages, LayoutSpec{PerSheet: 2})
	if err != nil {
		t.Fatal(err)
	}

	res, err := RenderPDF(comp, pages)
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if res.Len() == 0 {
		t.Fatal("empty output")
	}
	if !bytes.HasPrefix(res.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", res.Bytes()[:8])
	}
}
