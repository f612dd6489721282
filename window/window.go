package window

// Event is something that happened to a window. The concrete types are
// QuitEvent, ResizeEvent, MouseButtonEvent and MouseMotionEvent.
type Event interface {
	isEvent()
}

type QuitEvent struct{}

type ResizeEvent struct {
	Width, Height int
}

type MouseButtonEvent struct {
	X, Y    int
	Button  uint8
	Pressed bool
}

type MouseMotionEvent struct {
	X, Y int
}

func (QuitEvent) isEvent()        {}
func (ResizeEvent) isEvent()      {}
func (MouseButtonEvent) isEvent() {}
func (MouseMotionEvent) isEvent() {}

// Surface is a drawable pixel buffer owned by a Window. Pixels is row-major;
// row y starts at y*Pitch() and Pitch() may exceed Width()*BytesPerPixel().
// Pixels must only be touched between Lock and Unlock when MustLock reports
// true.
type Surface interface {
	Width() int
	Height() int
	Pitch() int
	BytesPerPixel() int
	FormatName() string
	Pixels() []byte

	// MapRGB returns the surface-native code of an opaque color.
	MapRGB(r, g, b uint8) uint32

	MustLock() bool
	Lock() error
	Unlock()

	// UpdateRect makes the given region visible on the screen.
	UpdateRect(x, y, w, h int) error
}

type Window interface {
	// WaitEvent blocks until the next event arrives.
	WaitEvent() Event

	// Surface returns the current surface. It is invalidated by Resize.
	Surface() Surface

	// Resize reallocates the surface with the given size.
	Resize(width, height int) (Surface, error)

	Close() error
}
