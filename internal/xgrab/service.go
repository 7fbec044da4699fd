package xgrab

// Geometry describes the default screen of an open display connection
type Geometry struct {
	Width  int
	Height int
	Depth  int
}

// PixelSource yields the raw pixel words of a captured image
type PixelSource interface {
	// PixelAt returns the native pixel value at (x, y), truncated to
	// 32 bits
	PixelAt(x, y int) uint32
}

// Image is a captured native image. Release frees whatever server or
// OS resources back it and must be called exactly once
type Image interface {
	PixelSource
	Release()
}

// ShmSegment is a shared memory segment usable as capture storage
type ShmSegment interface {
	Data() []byte
	Release()
}

// Conn is a single open connection to a display server
type Conn interface {
	Geometry() Geometry
	// ShmAvailable reports whether the server supports shared memory
	// images. True means the fast path may be attempted, not that it
	// will succeed
	ShmAvailable() bool
	NewShmSegment(size int) (ShmSegment, error)
	AttachShm(seg ShmSegment) error
	DetachShm(seg ShmSegment)
	ShmGetImage(seg ShmSegment, x, y, w, h int) (Image, error)
	GetImage(x, y, w, h int) (Image, error)
	Close()
}

// Backend opens connections to a display server
type Backend interface {
	Open(display string) (Conn, error)
}
