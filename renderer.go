package sigraster

import (
	"image"
	"image/color"
	"log"

	"github.com/esimov/sigraster/imop"
)

// Default canvas size of a rendered signature.
const (
	DefaultWidth  = 640
	DefaultHeight = 200
)

// Canvas is the drawing surface a Renderer paints the strokes on.
type Canvas interface {
	// DrawLine draws a segment between two points in the given color.
	// Points outside of the canvas must be tolerated.
	DrawLine(x0, y0, x1, y1 float32, col color.Color)
	// Invert complements the color channels of every pixel.
	Invert()
	// FlipV reverses the row order of the canvas.
	FlipV()
	// Image returns the current pixel buffer.
	Image() *image.NRGBA
}

var _ Canvas = (*imop.Bitmap)(nil)

// Renderer options
type Renderer struct {
	Width     int
	Height    int
	Mode      imop.LineMode
	LineWidth float32
	// NewCanvas creates the drawing surface for a single Render call.
	// When nil an imop.Bitmap is used.
	NewCanvas func(width, height int) Canvas
	Debug     bool
	Logger    *log.Logger
}

// NewRenderer returns a Renderer producing 640x200 images with solid lines.
func NewRenderer() *Renderer {
	return &Renderer{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Mode:   imop.Solid,
	}
}

// Render decodes the signature with the default settings and returns the image.
func Render(sig []byte) *image.NRGBA {
	return NewRenderer().Render(sig)
}

// Render is the main entry point: it decodes the encoded signature, draws every
// stroke in white on a black canvas, then inverts and flips the canvas vertically.
// The result is black strokes on a white background. Render never fails;
// malformed input degrades into fewer (or no) drawn segments.
func (r *Renderer) Render(sig []byte) *image.NRGBA {
	width, height := r.size()
	canvas := r.canvas(width, height)

	var strokes, segments int
	for run := range Strokes(sig) {
		n := r.drawStroke(canvas, strokes, run)
		segments += n
		strokes++
	}
	r.logf("signature: %d bytes, %d strokes, %d segments", len(sig), strokes, segments)

	canvas.Invert()
	canvas.FlipV()

	return canvas.Image()
}

// drawStroke draws the segments of a single stroke run and returns their number.
func (r *Renderer) drawStroke(canvas Canvas, idx int, run []byte) int {
	header, body := SplitHeader(run)
	start := StartCoord(header)

	var n int
	for a, b := range Segments(Accumulate(start, Deltas(body))) {
		canvas.DrawLine(a.X, a.Y, b.X, b.Y, color.White)
		n++
	}
	r.logf("stroke %d: start (%d,%d), %d triplets, %d segments",
		idx, start.X, start.Y, len(body)/tripletSize, n)

	return n
}

func (r *Renderer) size() (int, int) {
	width, height := r.Width, r.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return width, height
}

func (r *Renderer) canvas(width, height int) Canvas {
	if r.NewCanvas != nil {
		return r.NewCanvas(width, height)
	}
	bmp := imop.NewBitmap(image.Rect(0, 0, width, height))
	bmp.Mode = r.Mode
	bmp.LineWidth = r.LineWidth

	return bmp
}

func (r *Renderer) logf(format string, v ...any) {
	if !r.Debug {
		return
	}
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf(format, v...)
}
