package xgrab

import (
	"encoding/binary"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/shm"
	"github.com/BurntSushi/xgb/xproto"
	sysshm "github.com/gen2brain/shm"
)

// X11Backend opens connections to an X server, speaking the wire
// protocol directly
type X11Backend struct{}

// NewX11Backend returns a Backend for X displays (":0", "host:1.0", ...)
func NewX11Backend() *X11Backend {
	return &X11Backend{}
}

// Open connects to the named display and picks its default screen
func (*X11Backend) Open(display string) (Conn, error) {
	c, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, err
	}
	screen := xproto.Setup(c).DefaultScreen(c)
	conn := &x11Conn{
		conn: c,
		root: screen.Root,
		geom: Geometry{
			Width:  int(screen.WidthInPixels),
			Height: int(screen.HeightInPixels),
			Depth:  int(screen.RootDepth),
		},
	}
	// the MIT-SHM handshake doubles as the capability probe
	conn.shmOK = shm.Init(c) == nil
	return conn, nil
}

type x11Conn struct {
	conn  *xgb.Conn
	root  xproto.Window
	geom  Geometry
	shmOK bool
}

func (c *x11Conn) Geometry() Geometry {
	return c.geom
}

func (c *x11Conn) ShmAvailable() bool {
	return c.shmOK
}

func (c *x11Conn) Close() {
	c.conn.Close()
}

// NewShmSegment allocates a private SysV segment and maps it into the
// process. The id is marked for removal right away so the segment
// cannot outlive a crashed process; the mapping stays valid until
// detached.
func (c *x11Conn) NewShmSegment(size int) (ShmSegment, error) {
	id, err := sysshm.Get(sysshm.IPC_PRIVATE, size, sysshm.IPC_CREAT|0777)
	if err != nil {
		return nil, err
	}
	data, err := sysshm.At(id, 0, 0)
	if err != nil {
		sysshm.Rm(id)
		return nil, err
	}
	sysshm.Rm(id)
	return &sysvSegment{id: id, data: data}, nil
}

func (c *x11Conn) AttachShm(segment ShmSegment) error {
	seg := segment.(*sysvSegment)
	server, err := shm.NewSegId(c.conn)
	if err != nil {
		return err
	}
	if err := shm.AttachChecked(c.conn, server, uint32(seg.id), false).Check(); err != nil {
		return err
	}
	seg.server = server
	return nil
}

func (c *x11Conn) DetachShm(segment ShmSegment) {
	shm.Detach(c.conn, segment.(*sysvSegment).server)
}

func (c *x11Conn) ShmGetImage(segment ShmSegment, x, y, w, h int) (Image, error) {
	seg := segment.(*sysvSegment)
	_, err := shm.GetImage(c.conn, xproto.Drawable(c.root),
		int16(x), int16(y), uint16(w), uint16(h),
		0xffffffff, byte(xproto.ImageFormatZPixmap), seg.server, 0).Reply()
	if err != nil {
		return nil, err
	}
	return &rawImage{
		data:   seg.data,
		stride: rowStride(c.geom.Depth, w),
		bpp:    bytesPerPixel(c.geom.Depth),
	}, nil
}

func (c *x11Conn) GetImage(x, y, w, h int) (Image, error) {
	reply, err := xproto.GetImage(c.conn, xproto.ImageFormatZPixmap,
		xproto.Drawable(c.root), int16(x), int16(y), uint16(w), uint16(h),
		0xffffffff).Reply()
	if err != nil {
		return nil, err
	}
	return &rawImage{
		data:   reply.Data,
		stride: rowStride(int(reply.Depth), w),
		bpp:    bytesPerPixel(int(reply.Depth)),
	}, nil
}

type sysvSegment struct {
	id     int
	data   []byte
	server shm.Seg
}

func (s *sysvSegment) Data() []byte {
	return s.data
}

func (s *sysvSegment) Release() {
	sysshm.Dt(s.data)
}

// rawImage reads native pixel words out of a ZPixmap byte buffer. Both
// capture paths deliver little-endian scanlines padded to four bytes.
type rawImage struct {
	data   []byte
	stride int
	bpp    int
}

func (img *rawImage) PixelAt(x, y int) uint32 {
	off := y*img.stride + x*img.bpp
	switch img.bpp {
	case 4:
		return binary.LittleEndian.Uint32(img.data[off:])
	case 2:
		return uint32(binary.LittleEndian.Uint16(img.data[off:]))
	default:
		return uint32(img.data[off])
	}
}

// Release is a no-op; the bytes belong to the segment or the protocol
// reply
func (img *rawImage) Release() {}

func bytesPerPixel(depth int) int {
	switch {
	case depth > 16:
		return 4
	case depth > 8:
		return 2
	default:
		return 1
	}
}

// rowStride is the padded byte length of one ZPixmap scanline
func rowStride(depth, width int) int {
	return (width*bytesPerPixel(depth) + 3) &^ 3
}
