package encoders

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrame(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}
	return img
}

func TestCodecFromName(t *testing.T) {
	for name, want := range map[string]ImageCodec{
		"png": PNGCodec, "jpg": JPEGCodec, "jpeg": JPEGCodec,
	} {
		codec, err := CodecFromName(name)
		require.NoError(t, err)
		assert.Equal(t, want, codec)
	}

	_, err := CodecFromName("bmp")
	assert.Error(t, err)
}

func TestEncoderServiceSupports(t *testing.T) {
	svc := &EncoderService{}
	assert.True(t, svc.Supports(PNGCodec))
	assert.True(t, svc.Supports(JPEGCodec))
	assert.False(t, svc.Supports(42))
}

func TestEncoderServiceUnknownCodec(t *testing.T) {
	_, err := NewEncoderService().NewEncoder(42)
	assert.Error(t, err)
}

func TestPNGEncoderRoundTrip(t *testing.T) {
	enc, err := NewEncoderService().NewEncoder(PNGCodec)
	require.NoError(t, err)
	assert.Equal(t, "png", enc.Extension())
	assert.Equal(t, "image/png", enc.ContentType())

	var buf bytes.Buffer
	require.NoError(t, enc.Encode(&buf, testFrame(5, 3)))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 5, decoded.Bounds().Dx())
	assert.Equal(t, 3, decoded.Bounds().Dy())
}

func TestJPEGEncoderRoundTrip(t *testing.T) {
	enc, err := NewEncoderService().NewEncoder(JPEGCodec)
	require.NoError(t, err)
	assert.Equal(t, "jpg", enc.Extension())
	assert.Equal(t, "image/jpeg", enc.ContentType())

	var buf bytes.Buffer
	require.NoError(t, enc.Encode(&buf, testFrame(8, 4)))

	decoded, err := jpeg.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 8, decoded.Bounds().Dx())
	assert.Equal(t, 4, decoded.Bounds().Dy())
}

func TestScaleImage(t *testing.T) {
	scaled := ScaleImage(testFrame(16, 8), image.Pt(8, 4))

	assert.Equal(t, 8, scaled.Bounds().Dx())
	assert.Equal(t, 4, scaled.Bounds().Dy())
}
