// Package raster draws text and strokes onto tag images.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// LineSpacing is the extra gap in pixels between lines of multiline text.
const LineSpacing = 4

// Opaque returns an NRGBA copy of img with the alpha channel discarded.
// Color values of translucent pixels are kept as stored.
func Opaque(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}

// Text draws s with its first line's top-left corner at at. Lines are split
// on '\n' and advance by the face ascent plus LineSpacing.
func Text(dst draw.Image, face font.Face, at image.Point, s string, c color.Color) {
	if s == "" {
		return
	}
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	advance := ascent + LineSpacing

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}
	for i, line := range strings.Split(s, "\n") {
		d.Dot = fixed.P(at.X, at.Y+ascent+i*advance)
		d.DrawString(line)
	}
}

// Line strokes a straight segment of the given width between pixel centers.
// Ends are square and flush with the endpoints. A zero-length segment draws
// nothing.
func Line(dst draw.Image, from, to image.Point, width float64, c color.Color) {
	dx := float64(to.X - from.X)
	dy := float64(to.Y - from.Y)
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}

	// Half-width normal to the segment.
	nx := -dy / length * width / 2
	ny := dx / length * width / 2

	b := dst.Bounds()
	fx := float64(from.X-b.Min.X) + 0.5
	fy := float64(from.Y-b.Min.Y) + 0.5
	tx := float64(to.X-b.Min.X) + 0.5
	ty := float64(to.Y-b.Min.Y) + 0.5

	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32(fx+nx), float32(fy+ny))
	z.LineTo(float32(tx+nx), float32(ty+ny))
	z.LineTo(float32(tx-nx), float32(ty-ny))
	z.LineTo(float32(fx-nx), float32(fy-ny))
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}
