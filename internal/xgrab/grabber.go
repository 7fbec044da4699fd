package xgrab

import (
	"fmt"
	"os"
)

// Config carries the capture options that are not per-call parameters
type Config struct {
	// Display overrides the DISPLAY environment lookup when non-empty
	Display string
}

// Grabber captures regions of the default screen of a display. Every
// capture opens its own connection and tears it down before returning,
// so a Grabber can be shared between goroutines as long as the backend
// supports independent concurrent connections.
type Grabber struct {
	backend Backend
	cfg     Config
}

// New creates a Grabber over the given display backend
func New(backend Backend, cfg Config) *Grabber {
	return &Grabber{backend: backend, cfg: cfg}
}

// NewX11 creates a Grabber that talks to a real X server, resolving
// the display name from the environment
func NewX11() *Grabber {
	return New(NewX11Backend(), Config{})
}

// Capture grabs the w×h region at (x, y) from the configured display
// and returns it as w*h packed 0xAARRGGBB words in row-major order,
// top-to-bottom, left-to-right.
func (g *Grabber) Capture(x, y, w, h int) ([]uint32, error) {
	return g.CaptureDisplay(g.resolveDisplay(), x, y, w, h)
}

// Geometry reports the default screen geometry of the configured
// display
func (g *Grabber) Geometry() (Geometry, error) {
	display := g.resolveDisplay()
	if display == "" {
		return Geometry{}, ErrNoDisplay
	}
	conn, err := g.backend.Open(display)
	if err != nil {
		return Geometry{}, fmt.Errorf("%w: %v", ErrConnect, err)
	}
	defer conn.Close()
	return conn.Geometry(), nil
}

// CaptureDisplay grabs from an explicitly named display instead of the
// configured one.
func (g *Grabber) CaptureDisplay(display string, x, y, w, h int) ([]uint32, error) {
	if display == "" {
		return nil, ErrNoDisplay
	}

	conn, err := g.backend.Open(display)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}
	defer conn.Close()

	geom := conn.Geometry()
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > geom.Width || y+h > geom.Height {
		return nil, fmt.Errorf("%w: %dx%d+%d+%d exceeds screen %dx%d",
			ErrOutOfBounds, w, h, x, y, geom.Width, geom.Height)
	}

	// A failed shared memory setup fails the whole call; it does not
	// fall back to the plain image pull.
	if conn.ShmAvailable() {
		return captureShared(conn, geom, x, y, w, h)
	}
	return captureDirect(conn, x, y, w, h)
}

func (g *Grabber) resolveDisplay() string {
	if g.cfg.Display != "" {
		return g.cfg.Display
	}
	return os.Getenv("DISPLAY")
}

func captureShared(conn Conn, geom Geometry, x, y, w, h int) ([]uint32, error) {
	seg, err := conn.NewShmSegment(rowStride(geom.Depth, w) * h)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShm, err)
	}
	defer seg.Release()

	if err := conn.AttachShm(seg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShm, err)
	}
	defer conn.DetachShm(seg)

	img, err := conn.ShmGetImage(seg, x, y, w, h)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapture, err)
	}
	defer img.Release()

	return ConvertARGB(img, w, h), nil
}

func captureDirect(conn Conn, x, y, w, h int) ([]uint32, error) {
	img, err := conn.GetImage(x, y, w, h)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapture, err)
	}
	defer img.Release()

	return ConvertARGB(img, w, h), nil
}
