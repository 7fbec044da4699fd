package encoders

import (
	"image"
	"image/jpeg"
	"io"
)

const jpegQuality = 90

// JPEGEncoder writes lossy jpeg output
type JPEGEncoder struct {
	opts jpeg.Options
}

func newJPEGEncoder() (Encoder, error) {
	return &JPEGEncoder{
		opts: jpeg.Options{Quality: jpegQuality},
	}, nil
}

// Encode writes the frame as jpeg
func (e *JPEGEncoder) Encode(w io.Writer, img *image.RGBA) error {
	return jpeg.Encode(w, img, &e.opts)
}

// Extension returns the canonical file extension
func (e *JPEGEncoder) Extension() string {
	return "jpg"
}

// ContentType returns the MIME type of the output
func (e *JPEGEncoder) ContentType() string {
	return "image/jpeg"
}

func init() {
	registeredEncoders[JPEGCodec] = newJPEGEncoder
}
