// Package manualpress prepares PDF manuals for printing.
//
// The core of the package is the n-up page compositor: it arranges the
// pages of one or more source PDFs into a 2-up or 4-up grid on new
// output sheets, scaling each page to fit its cell without distortion
// and without rasterizing vector content.
//
// # Composing
//
// Open the sources, compose a layout, and render it:
//
//	doc, err := manualpress.OpenDocument("manual.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	spec := manualpress.LayoutSpec{
//	    PerSheet:    2,
//	    Sheet:       manualpress.Letter,
//	    Orientation: manualpress.Landscape,
//	}
//
//	comp, err := manualpress.Compose(doc.Pages(), spec)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := manualpress.RenderPDF(comp, doc.Pages())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res.WriteToFile("manual_2up.pdf", 0o644)
//
// [Compose] is a pure function: it performs no I/O, holds no state
// between calls, and may be invoked concurrently from independent
// goroutines. All placement is deterministic, so identical inputs
// always produce identical output.
//
// For the common one-call case use [NUpFile]:
//
//	err := manualpress.NUpFile("out.pdf", spec, "manual.pdf")
//
// # Page sequences
//
// Compose fills cells in reading order from a flat page sequence.
// [DuplicatePages] repeats every page across all cells of its sheet
// (two identical half-letter copies per sheet, ready to cut), and
// [Interleave] lines up pages from several documents side by side.
//
// # Units and coordinates
//
// All dimensions are PDF points (72 per inch). Placement rectangles use
// a top-left origin; the renderer translates to PDF user space when
// writing the output document.
package manualpress
