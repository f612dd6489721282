package sdlwindow

import (
	"github.com/ushitora-anqou/aqpaint/constant"
	"github.com/ushitora-anqou/aqpaint/util"
	"github.com/ushitora-anqou/aqpaint/window"
	"github.com/veandco/go-sdl2/sdl"
)

func SDLInitialize() error {
	return sdl.Init(sdl.INIT_VIDEO)
}

func SDLQuit() {
	sdl.Quit()
}

// SDLWindow is a resizable window whose surface is written directly.
type SDLWindow struct {
	window  *sdl.Window
	surface *SDLSurface
}

// NewSDLWindow opens a window as large as the current display mode.
func NewSDLWindow() (*SDLWindow, error) {
	mode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		return nil, err
	}

	win, err := sdl.CreateWindow(
		constant.WINDOW_TITLE,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		mode.W,
		mode.H,
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE,
	)
	if err != nil {
		return nil, err
	}

	wind := &SDLWindow{window: win}
	if _, err := wind.acquireSurface(); err != nil {
		win.Destroy()
		return nil, err
	}
	return wind, nil
}

// acquireSurface fetches the window surface, which SDL reallocates whenever
// the window size changes, and clears it to black.
func (wind *SDLWindow) acquireSurface() (*SDLSurface, error) {
	surface, err := wind.window.GetSurface()
	if err != nil {
		return nil, err
	}
	if err := surface.FillRect(nil, sdl.MapRGB(surface.Format, 0, 0, 0)); err != nil {
		return nil, err
	}
	if err := wind.window.UpdateSurface(); err != nil {
		return nil, err
	}

	wind.surface = &SDLSurface{surface: surface, window: wind.window}
	util.Trace("surface: %dx%d pitch=%d format=%s",
		surface.W, surface.H, surface.Pitch, wind.surface.FormatName())
	return wind.surface, nil
}

func (wind *SDLWindow) Surface() window.Surface {
	return wind.surface
}

func (wind *SDLWindow) Resize(width, height int) (window.Surface, error) {
	surface, err := wind.acquireSurface()
	if err != nil {
		return nil, err
	}
	if surface.Width() != width || surface.Height() != height {
		util.Trace("resize: requested %dx%d, got %dx%d", width, height, surface.Width(), surface.Height())
	}
	return surface, nil
}

func (wind *SDLWindow) WaitEvent() window.Event {
	for {
		event := sdl.WaitEvent()
		if event == nil {
			util.Warn("WaitEvent: %v", sdl.GetError())
			continue
		}

		switch ev := event.(type) {
		case *sdl.QuitEvent:
			return window.QuitEvent{}

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				return window.ResizeEvent{Width: int(ev.Data1), Height: int(ev.Data2)}
			}

		case *sdl.MouseButtonEvent:
			return window.MouseButtonEvent{
				X:       int(ev.X),
				Y:       int(ev.Y),
				Button:  ev.Button,
				Pressed: ev.Type == sdl.MOUSEBUTTONDOWN,
			}

		case *sdl.MouseMotionEvent:
			return window.MouseMotionEvent{X: int(ev.X), Y: int(ev.Y)}
		}
	}
}

func (wind *SDLWindow) Close() error {
	return wind.window.Destroy()
}

// SDLSurface adapts the window surface of an SDLWindow to window.Surface.
type SDLSurface struct {
	surface *sdl.Surface
	window  *sdl.Window
}

func (s *SDLSurface) Width() int         { return int(s.surface.W) }
func (s *SDLSurface) Height() int        { return int(s.surface.H) }
func (s *SDLSurface) Pitch() int         { return int(s.surface.Pitch) }
func (s *SDLSurface) BytesPerPixel() int { return int(s.surface.Format.BytesPerPixel) }
func (s *SDLSurface) Pixels() []byte     { return s.surface.Pixels() }
func (s *SDLSurface) MustLock() bool     { return s.surface.MustLock() }
func (s *SDLSurface) Lock() error        { return s.surface.Lock() }
func (s *SDLSurface) Unlock()            { s.surface.Unlock() }

func (s *SDLSurface) FormatName() string {
	return sdl.GetPixelFormatName(uint(s.surface.Format.Format))
}

func (s *SDLSurface) MapRGB(r, g, b uint8) uint32 {
	return sdl.MapRGB(s.surface.Format, r, g, b)
}

func (s *SDLSurface) UpdateRect(x, y, w, h int) error {
	return s.window.UpdateSurfaceRects([]sdl.Rect{
		{X: int32(x), Y: int32(y), W: int32(w), H: int32(h)},
	})
}
