package sigraster

import (
	"image"
)

// RGBPix packs the image into a row-major buffer with three bytes (R, G, B)
// per pixel. The alpha channel is dropped; rendered signatures are opaque.
func RGBPix(src *image.NRGBA) []uint8 {
	bounds := src.Bounds()
	pixels := make([]uint8, 0, bounds.Dx()*bounds.Dy()*3)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		i := src.PixOffset(bounds.Min.X, y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixels = append(pixels, src.Pix[i+0], src.Pix[i+1], src.Pix[i+2])
			i += 4
		}
	}

	return pixels
}
