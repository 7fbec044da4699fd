package encoders

import (
	"image"
	"image/png"
	"io"
)

// PNGEncoder writes lossless png output
type PNGEncoder struct {
	enc png.Encoder
}

func newPNGEncoder() (Encoder, error) {
	return &PNGEncoder{
		enc: png.Encoder{CompressionLevel: png.DefaultCompression},
	}, nil
}

// Encode writes the frame as png
func (e *PNGEncoder) Encode(w io.Writer, img *image.RGBA) error {
	return e.enc.Encode(w, img)
}

// Extension returns the canonical file extension
func (e *PNGEncoder) Extension() string {
	return "png"
}

// ContentType returns the MIME type of the output
func (e *PNGEncoder) ContentType() string {
	return "image/png"
}

func init() {
	registeredEncoders[PNGCodec] = newPNGEncoder
}
