package encoders

import "fmt"

type encoderFactory = func() (Encoder, error)

// Index of supported formats, each encoder should register itself.
var registeredEncoders = make(map[ImageCodec]encoderFactory, 2)

// EncoderService creates instances of encoders
type EncoderService struct {
}

// NewEncoderService creates an encoder factory
func NewEncoderService() Service {
	return &EncoderService{}
}

// NewEncoder creates an instance of an encoder of the selected format
func (*EncoderService) NewEncoder(codec ImageCodec) (Encoder, error) {
	factory, found := registeredEncoders[codec]
	if !found {
		return nil, fmt.Errorf("format not supported")
	}
	return factory()
}

// Supports returns a boolean indicating if the format is supported
func (*EncoderService) Supports(codec ImageCodec) bool {
	_, found := registeredEncoders[codec]
	return found
}
