package encoders

import (
	"image"

	"github.com/nfnt/resize"
)

// ScaleImage resizes a frame to the target size before encoding
func ScaleImage(src *image.RGBA, target image.Point) *image.RGBA {
	return resize.Resize(uint(target.X), uint(target.Y), src, resize.Lanczos3).(*image.RGBA)
}
