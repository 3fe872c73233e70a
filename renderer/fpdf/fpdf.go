package fpdf

import (
	"bytes"

	"github.com/go-pdf/fpdf"

	"github.com/nekosoft/pdffer"
)

// Layout draws one payload onto a document. The document arrives with its
// first page already added and the configured font selected; the layout adds
// further pages as needed. Returning an error aborts rendering.
type Layout[T any] func(doc *fpdf.Fpdf, payload T) error

// Renderer implements pdffer.Renderer on top of the fpdf engine. Each Render
// call builds a fresh document, runs the layout, and returns the PDF bytes.
// A Renderer holds only configuration, so one value can back many template
// instances.
type Renderer[T any] struct {
	layout      Layout[T]
	orientation string
	unit        string
	size        string
	fontFamily  string
	fontSize    float64
}

// Compile-time check that Renderer implements pdffer.Renderer.
var _ pdffer.Renderer[struct{}] = (*Renderer[struct{}])(nil)

// Option configures a Renderer.
type Option[T any] func(*Renderer[T])

// WithOrientation sets the page orientation: "P" (portrait, the default) or "L".
func WithOrientation[T any](o string) Option[T] {
	return func(r *Renderer[T]) { r.orientation = o }
}

// WithPageSize sets the page size, e.g. "A4" (the default) or "Letter".
func WithPageSize[T any](size string) Option[T] {
	return func(r *Renderer[T]) { r.size = size }
}

// WithFont sets the base font selected before the layout runs.
// Default: Helvetica 12.
func WithFont[T any](family string, size float64) Option[T] {
	return func(r *Renderer[T]) {
		r.fontFamily = family
		r.fontSize = size
	}
}

// New creates a Renderer that delegates drawing to layout.
// Panics if layout is nil.
func New[T any](layout Layout[T], opts ...Option[T]) *Renderer[T] {
	if layout == nil {
		panic("fpdf: layout must not be nil")
	}
	r := &Renderer[T]{
		layout:      layout,
		orientation: "P",
		unit:        "mm",
		size:        "A4",
		fontFamily:  "Helvetica",
		fontSize:    12,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render implements pdffer.Renderer.
func (r *Renderer[T]) Render(payload T) ([]byte, error) {
	doc := fpdf.New(r.orientation, r.unit, r.size, "")
	doc.SetFont(r.fontFamily, "", r.fontSize)
	doc.AddPage()
	if err := r.layout(doc, payload); err != nil {
		return nil, err
	}
	if err := doc.Error(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
