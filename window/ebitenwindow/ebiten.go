//go:build ebiten

package ebitenwindow

import (
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ushitora-anqou/aqpaint/constant"
	"github.com/ushitora-anqou/aqpaint/util"
	"github.com/ushitora-anqou/aqpaint/window"
)

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

func EbitenInitialize() error {
	ebiten.SetTPS(constant.TPS)
	ebiten.SetWindowTitle(constant.WINDOW_TITLE)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetScreenClearedEveryFrame(false)
	ebiten.SetWindowSize(ebiten.ScreenSizeInFullscreen())
	return nil
}

// EbitenWindow runs inside ebiten's game loop and turns its polled input into
// the blocking event stream of window.Window. The painter consumes that
// stream from another goroutine, so the surface is a locking MemorySurface
// that Draw copies to the screen.
type EbitenWindow struct {
	*window.MemoryWindow

	width, height int
	cursorX       int
	cursorY       int
	quitSent      bool
	done          atomic.Bool

	drawn  *window.MemorySurface
	pixels []byte
}

func NewEbitenWindow() (*EbitenWindow, error) {
	width, height := ebiten.ScreenSizeInFullscreen()
	mw, err := window.NewMemoryWindow(
		width, height, window.ABGR8888, constant.EVENT_QUEUE_SIZE, window.WithLocking(),
	)
	if err != nil {
		return nil, err
	}
	return &EbitenWindow{MemoryWindow: mw, width: width, height: height}, nil
}

// Done makes the game loop terminate. Call it once the painter has stopped.
func (wind *EbitenWindow) Done() {
	wind.done.Store(true)
}

func (wind *EbitenWindow) push(ev window.Event) {
	if !wind.TryPush(ev) {
		util.Warn("event queue is full, dropping %T", ev)
	}
}

func (wind *EbitenWindow) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != wind.width || outsideHeight != wind.height {
		wind.width, wind.height = outsideWidth, outsideHeight
		wind.push(window.ResizeEvent{Width: outsideWidth, Height: outsideHeight})
	}
	return wind.width, wind.height
}

func (wind *EbitenWindow) Update() error {
	if wind.done.Load() {
		return ebiten.Termination
	}

	if ebiten.IsWindowBeingClosed() && !wind.quitSent {
		wind.quitSent = true
		wind.push(window.QuitEvent{})
		return nil
	}

	x, y := ebiten.CursorPosition()
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			wind.push(window.MouseButtonEvent{X: x, Y: y, Button: uint8(b), Pressed: true})
		}
	}
	if x != wind.cursorX || y != wind.cursorY {
		wind.cursorX, wind.cursorY = x, y
		wind.push(window.MouseMotionEvent{X: x, Y: y})
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustReleased(b) {
			wind.push(window.MouseButtonEvent{X: x, Y: y, Button: uint8(b), Pressed: false})
		}
	}

	return nil
}

// Draw copies the surface to the screen when it has changed. The screen is
// not cleared between frames, so nothing needs to be done otherwise.
func (wind *EbitenWindow) Draw(screen *ebiten.Image) {
	s := wind.MemorySurface()
	bounds := screen.Bounds()
	if bounds.Dx() != s.Width() || bounds.Dy() != s.Height() {
		// The painter has not caught up with the last resize yet.
		return
	}
	if len(s.TakeDirty()) == 0 && s == wind.drawn {
		return
	}

	if err := s.Lock(); err != nil {
		util.Warn("Draw: %v", err)
		return
	}
	wind.pixels = s.ToRGBA(wind.pixels)
	s.Unlock()

	screen.WritePixels(wind.pixels)
	wind.drawn = s
}
