// Package preview rasterizes PDF pages for on-screen preview, PNG
// export, and cover extraction.
//
// Rendering is delegated to MuPDF through go-fitz; this package only
// decides scale, file naming, and post-processing.
package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	fitz "github.com/gen2brain/go-fitz"
	xdraw "golang.org/x/image/draw"
)

// DefaultZoom is the render zoom used when none is given. A zoom of 1
// renders at 72 DPI; 3 gives print-quality PNGs.
const DefaultZoom = 3.0

// maxPreviewHeight caps preview bitmaps so window-sized previews stay
// cheap to produce and transfer.
const maxPreviewHeight = 800

// PageCount returns the number of pages in the PDF at path.
func PageCount(pdfPath string) (int, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return 0, fmt.Errorf("preview: opening %s: %w", pdfPath, err)
	}
	defer doc.Close()
	return doc.NumPage(), nil
}

// RenderAll renders every page of the PDF to PNG files in a directory
// named after the input ("manual.pdf" -> "manual_png/page_001.png").
// It returns the directory path.
func RenderAll(pdfPath string, zoom float64) (string, error) {
	if zoom <= 0 {
		zoom = DefaultZoom
	}

	doc, err := fitz.New(pdfPath)
	if err != nil {
		return "", fmt.Errorf("preview: opening %s: %w", pdfPath, err)
	}
	defer doc.Close()

	outDir := outputDir(pdfPath)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("preview: creating %s: %w", outDir, err)
	}

	for n := 0; n < doc.NumPage(); n++ {
		img, err := doc.ImageDPI(n, zoom*72)
		if err != nil {
			return "", fmt.Errorf("preview: rendering page %d: %w", n+1, err)
		}
		path := filepath.Join(outDir, pageFileName(n))
		if err := writePNG(path, img); err != nil {
			return "", err
		}
	}
	return outDir, nil
}

// RenderPage renders one page (0-based) to PNG bytes, downscaling when
// the page is taller than the preview height cap.
func RenderPage(pdfPath string, page int) ([]byte, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("preview: opening %s: %w", pdfPath, err)
	}
	defer doc.Close()

	if page < 0 || page >= doc.NumPage() {
		return nil, fmt.Errorf("preview: page %d out of range (document has %d pages)", page+1, doc.NumPage())
	}

	img, err := doc.ImageDPI(page, 72)
	if err != nil {
		return nil, fmt.Errorf("preview: rendering page %d: %w", page+1, err)
	}

	scaled := scaleToHeight(img, maxPreviewHeight)
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("preview: encoding page %d: %w", page+1, err)
	}
	return buf.Bytes(), nil
}

// SaveJPEG writes one preview page (0-based) next to outDir as
// "<base>_p<page>.jpg" and returns the file path.
func SaveJPEG(pdfPath string, page int, outDir string) (string, error) {
	data, err := RenderPage(pdfPath, page)
	if err != nil {
		return "", err
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("preview: decoding render: %w", err)
	}

	path := filepath.Join(outDir, jpegName(pdfPath, page))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("preview: creating %s: %w", path, err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		return "", fmt.Errorf("preview: encoding %s: %w", path, err)
	}
	return path, nil
}

// outputDir derives the PNG export directory for a PDF path.
func outputDir(pdfPath string) string {
	base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	return filepath.Join(filepath.Dir(pdfPath), base+"_png")
}

func pageFileName(page int) string {
	return fmt.Sprintf("page_%03d.png", page+1)
}

func jpegName(pdfPath string, page int) string {
	base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	return fmt.Sprintf("%s_p%d.jpg", base, page+1)
}

// scaleToHeight downscales img to maxH pixels tall, preserving aspect
// ratio. Images at or under the cap are returned unchanged.
func scaleToHeight(img image.Image, maxH int) image.Image {
	b := img.Bounds()
	if b.Dy() <= maxH {
		return img
	}
	w := b.Dx() * maxH / b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, maxH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: creating %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("preview: encoding %s: %w", path, err)
	}
	return nil
}
