package manualpress

import "errors"

// Sentinel errors returned by the library. Errors produced by this
// package wrap one of these, so callers can classify failures with
// [errors.Is] while still seeing the detailed message.
var (
	// ErrInvalidLayout is returned when a LayoutSpec cannot produce a
	// usable grid: bad cell count, nonpositive sheet dimensions, or
	// margins and gutters that leave no room for content.
	ErrInvalidLayout = errors.New("manualpress: invalid layout")

	// ErrEmptySource is returned when Compose is called with no pages.
	ErrEmptySource = errors.New("manualpress: no source pages")

	// ErrSourceLoad is returned when a source file cannot be opened or
	// decoded.
	ErrSourceLoad = errors.New("manualpress: source load failed")

	// ErrSerialization is returned when the composed output document
	// cannot be produced or written.
	ErrSerialization = errors.New("manualpress: serialization failed")
)
