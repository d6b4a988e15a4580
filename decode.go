package sigraster

import "iter"

const (
	// printableBias is added by the encoder to every coordinate byte.
	printableBias = 0x20

	// tripletSize is the number of bytes encoding one delta offset.
	tripletSize = 3

	startXMask = 0b0000000000001100
	startYMask = 0b0000000000000011

	fieldHighMask = 0b0000000000111111
	fieldXLowMask = 0b0000000000111000
	fieldYLowMask = 0b0000000000000111

	// A 9-bit field with anything above bit 7 set is negative.
	signTestMask   = 0b1111111100000000
	signExtendMask = 0b1111111000000000
)

// Coord is an integer point in signature space.
type Coord struct {
	X, Y int16
}

// Delta is the relative movement of the pen between two consecutive points.
type Delta struct {
	DX, DY int16
}

// StartCoord recovers the coarse start coordinate of a stroke from its header byte.
// Only the two most significant bits of each axis are stored, the low bits are zero.
func StartCoord(header byte) Coord {
	b := uint16(header)
	return Coord{
		X: int16((b & startXMask) << 7),
		Y: int16((b & startYMask) << 9),
	}
}

// SplitHeader separates the header byte of a stroke run from its body.
// An empty run has a zero header and an empty body.
func SplitHeader(run []byte) (header byte, body []byte) {
	if len(run) == 0 {
		return 0, run
	}
	return run[0], run[1:]
}

// DecodeTriplet unpacks one delta offset from three encoded bytes.
//
//	byte 1: 0 0 x8 x7 x6 x5 x4 x3
//	byte 2: 0 0 y8 y7 y6 y5 y4 y3
//	byte 3: 0 0 x2 x1 x0 y2 y1 y0
//
// Each axis is a 9-bit two's complement value.
func DecodeTriplet(b1, b2, b3 byte) Delta {
	v1 := uint16(b1 - printableBias)
	v2 := uint16(b2 - printableBias)
	v3 := uint16(b3 - printableBias)

	x := ((v1 & fieldHighMask) << 3) | ((v3 & fieldXLowMask) >> 3)
	y := ((v2 & fieldHighMask) << 3) | (v3 & fieldYLowMask)

	return Delta{DX: signExtend(x), DY: signExtend(y)}
}

func signExtend(v uint16) int16 {
	if v&signTestMask != 0 {
		v |= signExtendMask
	}
	return int16(v)
}

// Deltas decodes the body of a stroke run into delta offsets, one per
// complete triplet. A trailing group of one or two bytes is ignored.
func Deltas(body []byte) iter.Seq[Delta] {
	return func(yield func(Delta) bool) {
		for len(body) >= tripletSize {
			if !yield(DecodeTriplet(body[0], body[1], body[2])) {
				return
			}
			body = body[tripletSize:]
		}
	}
}
