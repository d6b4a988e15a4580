package sigraster

import (
	"bytes"
	"iter"
)

// StrokeDelimiter separates the pen strokes of an encoded signature.
const StrokeDelimiter byte = 'p'

// Strokes splits the encoded signature into stroke runs.
// Every delimiter byte ends the current run and is dropped. Leading, trailing
// or adjacent delimiters produce empty runs, and an empty input produces
// exactly one empty run. The yielded slices alias sig.
func Strokes(sig []byte) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for {
			i := bytes.IndexByte(sig, StrokeDelimiter)
			if i < 0 {
				yield(sig[:len(sig):len(sig)])
				return
			}
			if !yield(sig[:i:i]) {
				return
			}
			sig = sig[i+1:]
		}
	}
}
