package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	fitz "github.com/gen2brain/go-fitz"
	xdraw "golang.org/x/image/draw"
)

// CoverOptions controls cover extraction.
type CoverOptions struct {
	// Zoom is the render zoom (1 = 72 DPI). Zero uses DefaultZoom.
	Zoom float64

	// Circle crops the rendered page to a centered circle, for disc
	// labels.
	Circle bool

	// Shadow draws a soft drop shadow under the circle. Implies Circle.
	Shadow bool

	// Scale resizes the final image by the given factor. Zero or one
	// leaves it unchanged.
	Scale float64
}

// Cover renders one page (0-based) and applies the configured filters.
func Cover(pdfPath string, page int, opts CoverOptions) (image.Image, error) {
	zoom := opts.Zoom
	if zoom <= 0 {
		zoom = DefaultZoom
	}

	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("preview: opening %s: %w", pdfPath, err)
	}
	defer doc.Close()

	if page < 0 || page >= doc.NumPage() {
		return nil, fmt.Errorf("preview: page %d out of range (document has %d pages)", page+1, doc.NumPage())
	}

	img, err := doc.ImageDPI(page, zoom*72)
	if err != nil {
		return nil, fmt.Errorf("preview: rendering page %d: %w", page+1, err)
	}

	var out image.Image = img
	if opts.Circle || opts.Shadow {
		out = CircleCrop(out)
		if opts.Shadow {
			out = dropShadow(out.(*image.RGBA))
		}
	}
	if opts.Scale > 0 && opts.Scale != 1 {
		out = resize(out, opts.Scale)
	}
	return out, nil
}

// CoverPNG is Cover encoded as PNG bytes.
func CoverPNG(pdfPath string, page int, opts CoverOptions) ([]byte, error) {
	img, err := Cover(pdfPath, page, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("preview: encoding cover: %w", err)
	}
	return buf.Bytes(), nil
}

// CircleCrop masks src to a centered circle whose diameter is the
// smaller image dimension. Pixels outside the circle are transparent.
func CircleCrop(src image.Image) *image.RGBA {
	b := src.Bounds()
	d := b.Dx()
	if b.Dy() < d {
		d = b.Dy()
	}

	// Center the crop window on the source.
	sp := image.Point{
		X: b.Min.X + (b.Dx()-d)/2,
		Y: b.Min.Y + (b.Dy()-d)/2,
	}

	dst := image.NewRGBA(image.Rect(0, 0, d, d))
	mask := &circleMask{c: image.Point{X: d / 2, Y: d / 2}, r: d / 2}
	draw.DrawMask(dst, dst.Bounds(), src, sp, mask, image.Point{}, draw.Over)
	return dst
}

// circleMask is an alpha mask that is opaque inside a circle.
type circleMask struct {
	c image.Point
	r int
}

func (m *circleMask) ColorModel() color.Model {
	return color.AlphaModel
}

func (m *circleMask) Bounds() image.Rectangle {
	return image.Rect(m.c.X-m.r, m.c.Y-m.r, m.c.X+m.r, m.c.Y+m.r)
}

func (m *circleMask) At(x, y int) color.Color {
	dx, dy := x-m.c.X, y-m.c.Y
	if dx*dx+dy*dy <= m.r*m.r {
		return color.Alpha{A: 255}
	}
	return color.Alpha{}
}

// shadow rendering constants, in pixels of the rendered cover.
const (
	shadowOffset = 8
	shadowFade   = 12
)

// dropShadow places the circle-cropped cover on a larger transparent
// canvas with a soft dark disc offset underneath it.
func dropShadow(cover *image.RGBA) *image.RGBA {
	d := cover.Bounds().Dx()
	pad := shadowOffset + shadowFade
	canvas := image.NewRGBA(image.Rect(0, 0, d+2*pad, d+2*pad))

	shadow := &fadeMask{
		c:    image.Point{X: pad + d/2 + shadowOffset, Y: pad + d/2 + shadowOffset},
		r:    d / 2,
		fade: shadowFade,
	}
	draw.DrawMask(canvas, canvas.Bounds(),
		&image.Uniform{C: color.NRGBA{A: 120}}, image.Point{},
		shadow, image.Point{}, draw.Over)

	draw.Draw(canvas, image.Rect(pad, pad, pad+d, pad+d), cover, cover.Bounds().Min, draw.Over)
	return canvas
}

// fadeMask is a circular alpha mask with a linear falloff band at the
// rim, so the shadow edge is soft instead of hard.
type fadeMask struct {
	c    image.Point
	r    int
	fade int
}

func (m *fadeMask) ColorModel() color.Model {
	return color.AlphaModel
}

func (m *fadeMask) Bounds() image.Rectangle {
	r := m.r + m.fade
	return image.Rect(m.c.X-r, m.c.Y-r, m.c.X+r, m.c.Y+r)
}

func (m *fadeMask) At(x, y int) color.Color {
	dx, dy := float64(x-m.c.X), float64(y-m.c.Y)
	dist := dx*dx + dy*dy
	inner := float64(m.r)
	outer := float64(m.r + m.fade)
	switch {
	case dist <= inner*inner:
		return color.Alpha{A: 255}
	case dist >= outer*outer:
		return color.Alpha{}
	default:
		t := (outer - math.Sqrt(dist)) / float64(m.fade)
		return color.Alpha{A: uint8(255 * t)}
	}
}

func resize(img image.Image, factor float64) image.Image {
	b := img.Bounds()
	w := int(float64(b.Dx()) * factor)
	h := int(float64(b.Dy()) * factor)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
