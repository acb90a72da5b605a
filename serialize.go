package manualpress

import (
	"bytes"
	"fmt"

	gofpdf "github.com/lvillar/gofpdf"
	"github.com/lvillar/gofpdf/contrib/gofpdi"
)

// RenderPDF serializes a composition into a PDF document. pages must be
// the same sequence that produced comp: cells reference pages by index.
//
// Source pages are imported as form XObjects and placed at their
// destination rectangles, so vector content survives at full fidelity
// regardless of scale. Each distinct source page is imported once even
// when it appears in several cells.
func RenderPDF(comp *Composition, pages []Page) (*Result, error) {
	if comp == nil || len(comp.Sheets) == 0 {
		return nil, fmt.Errorf("%w: empty composition", ErrSerialization)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: comp.Width, Ht: comp.Height},
	})
	pdf.SetAutoPageBreak(false, 0)

	imp := gofpdi.NewImporter()
	templates := make(map[pageRef]int)

	for _, sheet := range comp.Sheets {
		pdf.AddPageFormat("P", gofpdf.SizeType{Wd: comp.Width, Ht: comp.Height})
		for _, cell := range sheet.Cells {
			if cell.Source < 0 || cell.Source >= len(pages) {
				return nil, fmt.Errorf("%w: cell references page %d of %d", ErrSerialization, cell.Source, len(pages))
			}
			p := pages[cell.Source]
			if p.Blank() {
				continue
			}
			if p.ref.imageType != "" {
				drawImage(pdf, p, cell.Dest)
				continue
			}

			tpl, ok := templates[p.ref]
			if !ok {
				// Import by the crop box so the template matches the
				// dimensions the layout was computed from; gofpdi
				// falls back to the media box when a page has none.
				tpl = imp.ImportPage(pdf, p.ref.path, p.ref.num, "/CropBox")
				templates[p.ref] = tpl
			}
			drawTemplate(pdf, imp, tpl, p, cell.Dest)
		}
	}

	if pdf.Err() {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return &Result{data: buf.Bytes()}, nil
}

// drawTemplate places one imported page at dest. Pages carrying a
// 90/270 rotation flag have upright (swapped) dimensions, so the
// template's natural box is rotated about the destination center to
// land exactly inside dest.
func drawTemplate(pdf *gofpdf.Fpdf, imp *gofpdi.Importer, tpl int, p Page, dest Rect) {
	if p.Rotation%180 == 0 {
		if p.Rotation != 0 {
			cx := dest.X + dest.W/2
			cy := dest.Y + dest.H/2
			pdf.TransformBegin()
			pdf.TransformRotate(float64(-p.Rotation), cx, cy)
			imp.UseImportedTemplate(pdf, tpl, dest.X, dest.Y, dest.W, dest.H)
			pdf.TransformEnd()
			return
		}
		imp.UseImportedTemplate(pdf, tpl, dest.X, dest.Y, dest.W, dest.H)
		return
	}

	// Natural (unrotated) box: the upright dims were swapped at load.
	natW, natH := dest.H, dest.W
	cx := dest.X + dest.W/2
	cy := dest.Y + dest.H/2
	pdf.TransformBegin()
	pdf.TransformRotate(float64(-p.Rotation), cx, cy)
	imp.UseImportedTemplate(pdf, tpl, cx-natW/2, cy-natH/2, natW, natH)
	pdf.TransformEnd()
}

// drawImage places a raster source at dest. gofpdf registers each
// image file once and reuses it on later placements.
func drawImage(pdf *gofpdf.Fpdf, p Page, dest Rect) {
	opts := gofpdf.ImageOptions{ImageType: p.ref.imageType}
	pdf.ImageOptions(p.ref.path, dest.X, dest.Y, dest.W, dest.H, false, opts, 0, "")
}

// NUpFile composes the pages of the input files, in order, into an
// n-up PDF written to outPath. It is a convenience wrapper around
// [OpenDocument], [OpenImage], [Compose], and [RenderPDF].
func NUpFile(outPath string, spec LayoutSpec, inPaths ...string) error {
	if len(inPaths) == 0 {
		return ErrEmptySource
	}

	var pages []Page
	for _, in := range inPaths {
		if IsImagePath(in) {
			p, err := OpenImage(in)
			if err != nil {
				return err
			}
			pages = append(pages, p)
			continue
		}
		doc, err := OpenDocument(in)
		if err != nil {
			return err
		}
		pages = append(pages, doc.Pages()...)
	}

	comp, err := Compose(pages, spec)
	if err != nil {
		return err
	}
	res, err := RenderPDF(comp, pages)
	if err != nil {
		return err
	}
	if err := res.WriteToFile(outPath, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrSerialization, outPath, err)
	}
	return nil
}
