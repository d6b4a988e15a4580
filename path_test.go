package sigraster

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath_AccumulateSkipsStart(t *testing.T) {
	assert := assert.New(t)

	deltas := slices.Values([]Delta{{10, 5}, {10, 0}, {-25, -7}})
	got := slices.Collect(Accumulate(Coord{X: 512, Y: 0}, deltas))

	assert.Equal([]Point{{522, 5}, {532, 5}, {507, -2}}, got)
}

func TestPath_NoDeltasNoPoints(t *testing.T) {
	assert := assert.New(t)

	assert.Empty(slices.Collect(DecodeStroke(nil)))
	assert.Empty(slices.Collect(DecodeStroke([]byte("$"))))
	assert.Empty(slices.Collect(DecodeStroke([]byte("$! "))))
}

func TestPath_ZeroDeltasStayAtStart(t *testing.T) {
	assert := assert.New(t)

	got := slices.Collect(DecodeStroke([]byte("$      ")))
	assert.Equal([]Point{{512, 0}, {512, 0}}, got)
}

func TestPath_WrapsAround(t *testing.T) {
	assert := assert.New(t)

	deltas := make([]Delta, 129)
	for i := range deltas {
		deltas[i] = Delta{DX: 255}
	}
	got := slices.Collect(Accumulate(Coord{}, slices.Values(deltas)))

	assert.Len(got, 129)
	assert.Equal(Point{X: 32640, Y: 0}, got[127])
	assert.Equal(Point{X: -32641, Y: 0}, got[128])
}

func TestPath_Segments(t *testing.T) {
	assert := assert.New(t)

	collect := func(pts []Point) [][2]Point {
		var pairs [][2]Point
		for a, b := range Segments(slices.Values(pts)) {
			pairs = append(pairs, [2]Point{a, b})
		}
		return pairs
	}

	assert.Empty(collect(nil))
	assert.Empty(collect([]Point{{1, 1}}))
	assert.Equal([][2]Point{
		{{1, 1}, {2, 2}},
		{{2, 2}, {3, 5}},
	}, collect([]Point{{1, 1}, {2, 2}, {3, 5}}))
}

func TestPath_DecodeEmpty(t *testing.T) {
	assert := assert.New(t)

	sig := Decode(nil)
	assert.Len(sig, 1)
	assert.Empty(sig[0])

	_, _, ok := sig.Bounds()
	assert.False(ok)
}

func TestPath_StrokesAreSeededIndependently(t *testing.T) {
	assert := assert.New(t)

	sig := Decode([]byte(" ! 5! 0p$! 5! 5"))

	assert.Equal(Signature{
		{{10, 5}, {20, 5}},
		{{522, 5}, {532, 10}},
	}, sig)

	lo, hi, ok := sig.Bounds()
	assert.True(ok)
	assert.Equal(Point{10, 5}, lo)
	assert.Equal(Point{532, 10}, hi)
}
