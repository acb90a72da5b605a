package manualpress

import (
	"bytes"
	"io"
	"os"
)

// Result holds a rendered PDF document.
//
// A Result is returned by [RenderPDF]. Its methods never modify the
// underlying data, so they may be called any number of times.
type Result struct {
	data []byte
}

// NewResult wraps raw PDF bytes in a [Result]. The slice is retained,
// not copied.
func NewResult(data []byte) *Result {
	return &Result{data: data}
}

// Bytes returns the raw PDF content.
func (r *Result) Bytes() []byte {
	return r.data
}

// Len returns the size of the PDF in bytes.
func (r *Result) Len() int {
	return len(r.data)
}

// Reader returns a [*bytes.Reader] over the PDF content, suitable for
// anything that accepts an [io.Reader].
func (r *Result) Reader() *bytes.Reader {
	return bytes.NewReader(r.data)
}

// WriteTo writes the full PDF content to w. It implements [io.WriterTo].
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.data)
	return int64(n), err
}

// WriteToFile writes the PDF to the file at path, creating it if needed.
func (r *Result) WriteToFile(path string, perm os.FileMode) error {
	return os.WriteFile(path, r.data, perm)
}
