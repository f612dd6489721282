package window

import (
	"encoding/binary"
	"fmt"
	"image"
	"sync"
)

// MemoryOption configures a MemorySurface or MemoryWindow.
type MemoryOption func(*memoryOptions)

type memoryOptions struct {
	padding  int
	mustLock bool
}

// WithPadding adds n unused bytes to the end of every row, so that the pitch
// is larger than width*bytes-per-pixel.
func WithPadding(n int) MemoryOption {
	return func(o *memoryOptions) {
		o.padding = n
	}
}

// WithLocking makes the surface require Lock before its pixels are accessed.
// Lock then excludes other goroutines until Unlock.
func WithLocking() MemoryOption {
	return func(o *memoryOptions) {
		o.mustLock = true
	}
}

// MemorySurface is a Surface backed by a plain byte slice. Pixel codes are
// stored in native byte order.
type MemorySurface struct {
	width, height, pitch int
	format               *PixelFormat
	pixels               []byte
	mustLock             bool

	mtx       sync.Mutex
	lockDepth int
	lockCount int

	dirtyMtx sync.Mutex
	dirty    []image.Rectangle
}

func NewMemorySurface(width, height int, format *PixelFormat, opts ...MemoryOption) (*MemorySurface, error) {
	var o memoryOptions
	for _, opt := range opts {
		opt(&o)
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("Invalid surface size: %dx%d", width, height)
	}
	if format == nil || format.BytesPerPixel <= 0 {
		return nil, fmt.Errorf("Invalid pixel format")
	}
	if o.padding < 0 {
		return nil, fmt.Errorf("Invalid row padding: %d", o.padding)
	}

	pitch := width*format.BytesPerPixel + o.padding
	return &MemorySurface{
		width:    width,
		height:   height,
		pitch:    pitch,
		format:   format,
		pixels:   make([]byte, pitch*height),
		mustLock: o.mustLock,
	}, nil
}

func (s *MemorySurface) Width() int           { return s.width }
func (s *MemorySurface) Height() int          { return s.height }
func (s *MemorySurface) Pitch() int           { return s.pitch }
func (s *MemorySurface) BytesPerPixel() int   { return s.format.BytesPerPixel }
func (s *MemorySurface) FormatName() string   { return s.format.Name }
func (s *MemorySurface) Format() *PixelFormat { return s.format }
func (s *MemorySurface) Pixels() []byte       { return s.pixels }
func (s *MemorySurface) MustLock() bool       { return s.mustLock }
func (s *MemorySurface) Locked() bool         { return s.lockDepth > 0 }
func (s *MemorySurface) LockCount() int       { return s.lockCount }
func (s *MemorySurface) MapRGB(r, g, b uint8) uint32 {
	return s.format.MapRGB(r, g, b)
}

func (s *MemorySurface) Lock() error {
	if s.mustLock {
		s.mtx.Lock()
	}
	s.lockDepth++
	s.lockCount++
	return nil
}

func (s *MemorySurface) Unlock() {
	if s.lockDepth == 0 {
		return
	}
	s.lockDepth--
	if s.mustLock {
		s.mtx.Unlock()
	}
}

func (s *MemorySurface) UpdateRect(x, y, w, h int) error {
	r := image.Rect(x, y, x+w, y+h)
	if !r.In(image.Rect(0, 0, s.width, s.height)) {
		return fmt.Errorf("Update region %v is outside of the surface", r)
	}
	s.dirtyMtx.Lock()
	s.dirty = append(s.dirty, r)
	s.dirtyMtx.Unlock()
	return nil
}

// DirtyRects returns the regions passed to UpdateRect since the last call to
// TakeDirty.
func (s *MemorySurface) DirtyRects() []image.Rectangle {
	s.dirtyMtx.Lock()
	defer s.dirtyMtx.Unlock()
	return append([]image.Rectangle(nil), s.dirty...)
}

// TakeDirty is like DirtyRects but also forgets the returned regions.
func (s *MemorySurface) TakeDirty() []image.Rectangle {
	s.dirtyMtx.Lock()
	defer s.dirtyMtx.Unlock()
	dirty := s.dirty
	s.dirty = nil
	return dirty
}

// ToRGBA converts the whole surface into tightly packed, non-premultiplied
// RGBA bytes, reusing dst when it is large enough. The caller must hold the
// lock when the surface requires one.
func (s *MemorySurface) ToRGBA(dst []byte) []byte {
	n := 4 * s.width * s.height
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]

	bpp := s.format.BytesPerPixel
	for row := 0; row < s.height; row++ {
		for col := 0; col < s.width; col++ {
			src := s.pixels[row*s.pitch+col*bpp:]
			var code uint32
			switch bpp {
			case 1:
				code = uint32(src[0])
			case 2:
				code = uint32(binary.NativeEndian.Uint16(src))
			case 4:
				code = binary.NativeEndian.Uint32(src)
			}
			r, g, b := s.format.GetRGB(code)
			off := (row*s.width + col) * 4
			dst[off+0] = r
			dst[off+1] = g
			dst[off+2] = b
			dst[off+3] = 0xff
		}
	}
	return dst
}

// MemoryWindow is a headless Window. Events are fed with Push and consumed by
// WaitEvent in order.
type MemoryWindow struct {
	events chan Event
	format *PixelFormat
	opts   []MemoryOption

	mtx     sync.Mutex
	surface *MemorySurface

	// ResizeError, when set, makes Resize fail with it.
	ResizeError error
}

func NewMemoryWindow(width, height int, format *PixelFormat, queueSize int, opts ...MemoryOption) (*MemoryWindow, error) {
	surface, err := NewMemorySurface(width, height, format, opts...)
	if err != nil {
		return nil, err
	}
	return &MemoryWindow{
		events:  make(chan Event, queueSize),
		format:  format,
		opts:    opts,
		surface: surface,
	}, nil
}

// Push enqueues an event. It blocks while the queue is full.
func (w *MemoryWindow) Push(events ...Event) {
	for _, ev := range events {
		w.events <- ev
	}
}

// TryPush enqueues an event unless the queue is full.
func (w *MemoryWindow) TryPush(ev Event) bool {
	select {
	case w.events <- ev:
		return true
	default:
		return false
	}
}

// CloseEvents ends the event stream. Once the queue drains, WaitEvent
// returns QuitEvent.
func (w *MemoryWindow) CloseEvents() {
	close(w.events)
}

func (w *MemoryWindow) WaitEvent() Event {
	ev, ok := <-w.events
	if !ok {
		return QuitEvent{}
	}
	return ev
}

func (w *MemoryWindow) Surface() Surface {
	return w.MemorySurface()
}

func (w *MemoryWindow) MemorySurface() *MemorySurface {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	return w.surface
}

func (w *MemoryWindow) Resize(width, height int) (Surface, error) {
	if w.ResizeError != nil {
		return nil, w.ResizeError
	}
	surface, err := NewMemorySurface(width, height, w.format, w.opts...)
	if err != nil {
		return nil, err
	}

	w.mtx.Lock()
	w.surface = surface
	w.mtx.Unlock()
	return surface, nil
}

func (w *MemoryWindow) Close() error {
	return nil
}
