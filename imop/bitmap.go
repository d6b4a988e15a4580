// Package imop implements the raster canvas the signature strokes are drawn on.
// A Bitmap owns an opaque NRGBA pixel buffer and exposes the few operations
// the renderer needs: line segments, whole-buffer color inversion and
// vertical mirroring.
package imop

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/esimov/sigraster/utils"
	"golang.org/x/image/vector"
)

// LineMode selects how a line segment is rasterized.
type LineMode int

const (
	// Solid draws single pixel wide Bresenham lines without blending.
	Solid LineMode = iota
	// AntiAliased fills the segment outline with coverage based blending.
	AntiAliased
)

// Bitmap is a fixed size drawing surface.
type Bitmap struct {
	Img *image.NRGBA

	// Mode controls the line drawing primitive.
	Mode LineMode
	// LineWidth is the stroke width used in AntiAliased mode. Zero means 1.
	LineWidth float32

	ras *vector.Rasterizer
}

// NewBitmap returns a black, fully opaque bitmap of the rectangle's size.
// The origin of the resulting image is always (0, 0).
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: imaging.New(rect.Dx(), rect.Dy(), color.Black),
	}
}

// Image returns the underlying pixel buffer.
func (b *Bitmap) Image() *image.NRGBA {
	return b.Img
}

// DrawLine draws the segment between (x0, y0) and (x1, y1) with the given color.
// Pixels falling outside of the bitmap are silently skipped.
func (b *Bitmap) DrawLine(x0, y0, x1, y1 float32, col color.Color) {
	switch b.Mode {
	case AntiAliased:
		b.drawAntiAliased(x0, y0, x1, y1, col)
	default:
		b.drawSolid(x0, y0, x1, y1, col)
	}
}

// drawSolid walks the segment with the Bresenham algorithm over float endpoints.
// The starting pixel is obtained by truncating the coordinates toward zero,
// so a zero length segment still sets exactly one pixel.
func (b *Bitmap) drawSolid(x0, y0, x1, y1 float32, col color.Color) {
	c := color.NRGBAModel.Convert(col).(color.NRGBA)

	steep := utils.Abs(y1-y0) > utils.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	var (
		dx    = x1 - x0
		dy    = utils.Abs(y1 - y0)
		e     = dx / 2
		x     = int(x0)
		y     = int(y0)
		endX  = int(x1)
		yStep = -1
	)
	if y0 < y1 {
		yStep = 1
	}

	bounds := b.Img.Bounds()
	for ; x <= endX; x++ {
		px, py := x, y
		if steep {
			px, py = y, x
		}
		if (image.Point{X: px, Y: py}).In(bounds) {
			b.Img.SetNRGBA(px, py, c)
		}
		e -= dy
		if e < 0 {
			y += yStep
			e += dx
		}
	}
}

// drawAntiAliased expands the segment into a square capped quad and fills it
// with the vector rasterizer, compositing the result over the bitmap.
func (b *Bitmap) drawAntiAliased(x0, y0, x1, y1 float32, col color.Color) {
	w, h := b.Img.Bounds().Dx(), b.Img.Bounds().Dy()
	if b.ras == nil {
		b.ras = vector.NewRasterizer(w, h)
	} else {
		b.ras.Reset(w, h)
	}

	hw := b.LineWidth / 2
	if hw <= 0 {
		hw = 0.5
	}

	// Pixel (x, y) covers the unit square starting at (x, y), hence the
	// half pixel shift which keeps both modes on the same pixel grid.
	x0, y0 = x0+0.5, y0+0.5
	x1, y1 = x1+0.5, y1+0.5

	// (tx, ty) runs along the segment, (nx, ny) is perpendicular to it.
	var tx, ty, nx, ny float32
	dx, dy := x1-x0, y1-y0
	if l := float32(math.Hypot(float64(dx), float64(dy))); l > 0 {
		tx, ty = dx/l*hw, dy/l*hw
		nx, ny = -ty, tx
	} else {
		tx, ty = hw, 0
		nx, ny = 0, hw
	}

	b.ras.MoveTo(x0-tx+nx, y0-ty+ny)
	b.ras.LineTo(x1+tx+nx, y1+ty+ny)
	b.ras.LineTo(x1+tx-nx, y1+ty-ny)
	b.ras.LineTo(x0-tx-nx, y0-ty-ny)
	b.ras.ClosePath()
	b.ras.Draw(b.Img, b.Img.Bounds(), image.NewUniform(col), image.Point{})
}

// Invert replaces every pixel's color channels with their complement.
// The alpha channel is left untouched.
func (b *Bitmap) Invert() {
	b.Img = imaging.Invert(b.Img)
}

// FlipV mirrors the bitmap vertically, reversing the row order.
func (b *Bitmap) FlipV() {
	b.Img = imaging.FlipV(b.Img)
}
