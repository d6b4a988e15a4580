package sigraster

import (
	"iter"

	"github.com/esimov/sigraster/utils"
)

// Point is an absolute pen position.
type Point struct {
	X, Y float32
}

// Stroke is one continuous pen-down path.
type Stroke []Point

// Signature holds every stroke of a decoded signature, in input order.
type Signature []Stroke

// Accumulate turns a sequence of delta offsets into absolute points.
// The running position starts at start and every delta moves it before the
// new position is emitted; the start itself is not emitted, so the sequence
// has one point per delta. Arithmetic wraps around on 16 bits and the
// points are never clamped.
func Accumulate(start Coord, deltas iter.Seq[Delta]) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		x, y := start.X, start.Y
		for d := range deltas {
			x += d.DX
			y += d.DY
			if !yield(Point{X: float32(x), Y: float32(y)}) {
				return
			}
		}
	}
}

// DecodeStroke decodes a single stroke run into its absolute points.
func DecodeStroke(run []byte) iter.Seq[Point] {
	header, body := SplitHeader(run)
	return Accumulate(StartCoord(header), Deltas(body))
}

// Segments pairs every point with its successor.
// A sequence with fewer than two points yields nothing.
func Segments(points iter.Seq[Point]) iter.Seq2[Point, Point] {
	return func(yield func(Point, Point) bool) {
		var (
			prev Point
			ok   bool
		)
		for p := range points {
			if ok && !yield(prev, p) {
				return
			}
			prev, ok = p, true
		}
	}
}

// Decode decodes all strokes of an encoded signature.
func Decode(sig []byte) Signature {
	var s Signature
	for run := range Strokes(sig) {
		stroke := Stroke{}
		for p := range DecodeStroke(run) {
			stroke = append(stroke, p)
		}
		s = append(s, stroke)
	}
	return s
}

// Bounds returns the bounding box of all points in the signature.
// It reports false if the signature has no points at all.
func (s Signature) Bounds() (lo, hi Point, ok bool) {
	for _, stroke := range s {
		for _, p := range stroke {
			if !ok {
				lo, hi, ok = p, p, true
				continue
			}
			lo.X, lo.Y = utils.Min(lo.X, p.X), utils.Min(lo.Y, p.Y)
			hi.X, hi.Y = utils.Max(hi.X, p.X), utils.Max(hi.Y, p.Y)
		}
	}
	return lo, hi, ok
}
