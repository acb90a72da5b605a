package manualpress

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// pageRef identifies a drawable unit: a source file and, for PDFs, a
// 1-based page number. Raster images have num 0 and imageType set.
// A zero pageRef marks a blank placeholder.
type pageRef struct {
	path      string
	num       int
	imageType string
}

// Page is one renderable unit handed to [Compose]: its upright visible
// dimensions in points, its rotation flag, and an opaque reference the
// renderer uses to draw the original content.
//
// Width and Height describe the page as displayed: when the PDF
// rotation flag is 90 or 270 degrees they are already swapped relative
// to the stored media box.
type Page struct {
	Width    float64
	Height   float64
	Rotation int

	ref pageRef
}

// Blank reports whether p is a placeholder that occupies a cell
// without drawing anything. The zero Page is blank.
func (p Page) Blank() bool {
	return p.ref == (pageRef{})
}

// BlankPage returns a placeholder page. [Interleave] emits these when
// one source runs out of pages before the others.
func BlankPage() Page {
	return Page{}
}

// Document is an opened source PDF. It records per-page dimensions at
// open time; the file itself is only read again when a composition
// referencing it is rendered.
type Document struct {
	path  string
	pages []Page
}

// OpenDocument reads the page geometry of the PDF at path.
// Unreadable or invalid files wrap [ErrSourceLoad].
func OpenDocument(path string) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving %s: %w", ErrSourceLoad, path, err)
	}

	ctx, err := api.ReadContextFile(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceLoad, path, err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceLoad, path, err)
	}
	if ctx.PageCount == 0 {
		return nil, fmt.Errorf("%w: %s has no pages", ErrSourceLoad, path)
	}

	doc := &Document{path: abs, pages: make([]Page, 0, ctx.PageCount)}
	for n := 1; n <= ctx.PageCount; n++ {
		_, _, inh, err := ctx.PageDict(n, false)
		if err != nil {
			return nil, fmt.Errorf("%w: %s page %d: %w", ErrSourceLoad, path, n, err)
		}
		box := inh.CropBox
		if box == nil {
			box = inh.MediaBox
		}
		if box == nil {
			return nil, fmt.Errorf("%w: %s page %d has no media box", ErrSourceLoad, path, n)
		}

		p := Page{
			Width:    box.Width(),
			Height:   box.Height(),
			Rotation: normalizeRotation(inh.Rotate),
			ref:      pageRef{path: abs, num: n},
		}
		if p.Rotation == 90 || p.Rotation == 270 {
			p.Width, p.Height = p.Height, p.Width
		}
		doc.pages = append(doc.pages, p)
	}
	return doc, nil
}

// OpenImage loads a PNG or JPEG file as a single renderable unit, so
// standalone scans can be composed alongside PDF pages. Pixel
// dimensions are taken as points, one pixel per point at 72 DPI.
func OpenImage(path string) (Page, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Page{}, fmt.Errorf("%w: resolving %s: %w", ErrSourceLoad, path, err)
	}

	f, err := os.Open(abs)
	if err != nil {
		return Page{}, fmt.Errorf("%w: %s: %w", ErrSourceLoad, path, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Page{}, fmt.Errorf("%w: %s: %w", ErrSourceLoad, path, err)
	}

	var imageType string
	switch format {
	case "png":
		imageType = "PNG"
	case "jpeg":
		imageType = "JPG"
	default:
		return Page{}, fmt.Errorf("%w: %s: unsupported image format %q", ErrSourceLoad, path, format)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Page{}, fmt.Errorf("%w: %s has size %dx%d", ErrSourceLoad, path, cfg.Width, cfg.Height)
	}

	return Page{
		Width:  float64(cfg.Width),
		Height: float64(cfg.Height),
		ref:    pageRef{path: abs, imageType: imageType},
	}, nil
}

// IsImagePath reports whether path has a file extension [OpenImage]
// accepts.
func IsImagePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

// Path returns the absolute path the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return len(d.pages)
}

// Pages returns the document's pages in order. The slice is shared;
// callers must not modify it.
func (d *Document) Pages() []Page {
	return d.pages
}

func normalizeRotation(deg int) int {
	r := deg % 360
	if r < 0 {
		r += 360
	}
	return r
}
