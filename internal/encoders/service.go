package encoders

import (
	"fmt"
	"image"
	"io"
)

// Service creates encoder instances
type Service interface {
	NewEncoder(codec ImageCodec) (Encoder, error)
}

// Encoder writes an image in its output format
type Encoder interface {
	Encode(w io.Writer, img *image.RGBA) error
	Extension() string
	ContentType() string
}

// ImageCodec can be either png or jpeg
type ImageCodec = int

const (
	// PNGCodec png
	PNGCodec ImageCodec = iota
	// JPEGCodec jpeg
	JPEGCodec
)

// CodecFromName maps a format name to its codec
func CodecFromName(name string) (ImageCodec, error) {
	switch name {
	case "png":
		return PNGCodec, nil
	case "jpg", "jpeg":
		return JPEGCodec, nil
	}
	return 0, fmt.Errorf("unknown image format %q", name)
}
