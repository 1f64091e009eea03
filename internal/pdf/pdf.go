// Package pdf builds an append-only multi-page PDF where every page is one
// raster image sized 1px = 1pt.
package pdf

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/signintech/gopdf"
)

// ErrNoPages is returned when writing a document without pages.
var ErrNoPages = errors.New("pdf: document has no pages")

// Document accumulates image pages.
type Document struct {
	pdf   gopdf.GoPdf
	pages int
}

// New returns an empty Document.
func New() *Document {
	return &Document{}
}

// Pages returns the number of pages added so far.
func (d *Document) Pages() int {
	return d.pages
}

// AddImage appends a page the size of img and draws img over all of it.
func (d *Document) AddImage(img image.Image) error {
	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("pdf: page %d: empty image", d.pages+1)
	}
	size := &gopdf.Rect{W: float64(b.Dx()), H: float64(b.Dy())}

	if d.pages == 0 {
		d.pdf.Start(gopdf.Config{PageSize: *size, Unit: gopdf.UnitPT})
	}
	d.pdf.AddPageWithOption(gopdf.PageOption{PageSize: size})
	if err := d.pdf.ImageFrom(img, 0, 0, size); err != nil {
		return fmt.Errorf("pdf: page %d: %w", d.pages+1, err)
	}
	d.pages++
	return nil
}

// WriteTo writes the document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	if d.pages == 0 {
		return 0, ErrNoPages
	}
	cw := &countingWriter{w: w}
	if err := d.pdf.Write(cw); err != nil {
		return cw.n, fmt.Errorf("pdf: writing document: %w", err)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
