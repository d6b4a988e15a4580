package sigraster

import (
	"errors"
	"fmt"

	"github.com/esimov/sigraster/utils"
)

const (
	// headerBase keeps encoded header bytes printable and away from the delimiter.
	headerBase = 0x40

	// startLowMask covers the bits of a start coordinate the header cannot store.
	startLowMask = ^int16(0b0000011000000000)

	minDelta = -256
	maxDelta = 255
)

var (
	// ErrStartUnaligned is returned when a start coordinate cannot be stored in a header byte.
	ErrStartUnaligned = errors.New("start coordinate is not representable in a stroke header")
	// ErrDeltaRange is returned when two consecutive points are too far apart.
	ErrDeltaRange = errors.New("delta offset out of the 9-bit range")
)

// Path is a stroke in encodable form: a start coordinate on the coarse
// header grid followed by absolute integer points.
type Path struct {
	Start  Coord
	Points []Coord
}

// Encode is the inverse of Decode: it packs the paths into the compact
// signature encoding, separating them with StrokeDelimiter.
// The start coordinate of each path must be a combination of 0, 512, 1024
// or 1536 on both axes, and consecutive points must not move more than
// the 9-bit signed delta range allows.
func Encode(paths []Path) ([]byte, error) {
	var out []byte
	for i, p := range paths {
		if i > 0 {
			out = append(out, StrokeDelimiter)
		}
		header, err := encodeHeader(p.Start)
		if err != nil {
			return nil, fmt.Errorf("stroke %d: %w", i, err)
		}
		out = append(out, header)

		prev := p.Start
		for j, pt := range p.Points {
			d := Delta{DX: pt.X - prev.X, DY: pt.Y - prev.Y}
			if !utils.InRange(int(pt.X)-int(prev.X), minDelta, maxDelta) ||
				!utils.InRange(int(pt.Y)-int(prev.Y), minDelta, maxDelta) {
				return nil, fmt.Errorf("stroke %d, point %d (%d,%d): %w", i, j, pt.X, pt.Y, ErrDeltaRange)
			}
			b1, b2, b3 := EncodeTriplet(d)
			out = append(out, b1, b2, b3)
			prev = pt
		}
	}
	return out, nil
}

func encodeHeader(c Coord) (byte, error) {
	if c.X&startLowMask != 0 || c.Y&startLowMask != 0 {
		return 0, fmt.Errorf("(%d,%d): %w", c.X, c.Y, ErrStartUnaligned)
	}
	x := uint16(c.X) >> 7 & startXMask
	y := uint16(c.Y) >> 9 & startYMask

	return byte(headerBase | x | y), nil
}

// EncodeTriplet packs a delta offset into three printable bytes.
// Both components are truncated to their low 9 bits, so callers must make
// sure they are within [-256, 255].
func EncodeTriplet(d Delta) (b1, b2, b3 byte) {
	x := uint16(d.DX) & 0x1ff
	y := uint16(d.DY) & 0x1ff

	b1 = byte(x>>3&fieldHighMask) + printableBias
	b2 = byte(y>>3&fieldHighMask) + printableBias
	b3 = byte((x&fieldYLowMask)<<3|y&fieldYLowMask) + printableBias

	return b1, b2, b3
}
