package xgrab

import "image"

// ConvertARGB packs the w×h region of src into 0xAARRGGBB words, one
// per pixel, row-major top-to-bottom. The alpha byte is forced to
// fully opaque regardless of what the source carries there.
func ConvertARGB(src PixelSource, w, h int) []uint32 {
	out := make([]uint32, w*h)
	off := 0
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			out[off] = src.PixelAt(i, j) | 0xff000000
			off++
		}
	}
	return out
}

// ToRGBA unpacks a packed ARGB buffer into a stdlib RGBA image
func ToRGBA(pixels []uint32, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, p := range pixels {
		o := i * 4
		img.Pix[o] = uint8(p >> 16)
		img.Pix[o+1] = uint8(p >> 8)
		img.Pix[o+2] = uint8(p)
		img.Pix[o+3] = uint8(p >> 24)
	}
	return img
}
