/*
Package sigraster decodes the compact binary encoding of a handwritten signature
and rasterizes its pen strokes into an image.

An encoded signature is a byte stream of strokes separated by the byte 'p'.
Each stroke starts with a header byte carrying the coarse start coordinate,
followed by 3-byte groups, each encoding the relative (dx, dy) movement of
the pen as two 9-bit two's complement values. The decoded strokes are drawn
as connected line segments on a 640x200 canvas, then the colors are inverted
and the image is mirrored vertically, giving black strokes on a white background.

The whole pipeline is available as a single call:

	package main

	import (
		"image/png"
		"os"

		"github.com/esimov/sigraster"
	)

	func main() {
		img := sigraster.Render(encoded)
		png.Encode(os.Stdout, img)
	}

For finer control use a Renderer, or the lazy building blocks Strokes,
DecodeStroke, Accumulate and Segments directly.
*/
package sigraster
