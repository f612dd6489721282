package painter

import (
	"errors"
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ushitora-anqou/aqpaint/paint"
	"github.com/ushitora-anqou/aqpaint/window"
)

const testSeed = 7

func newTestPainter(t *testing.T, width, height int, format *window.PixelFormat, opts ...window.MemoryOption) (*Painter, *window.MemoryWindow) {
	wind, err := window.NewMemoryWindow(width, height, format, 16, opts...)
	require.NoError(t, err)
	return NewPainter(wind, rand.New(rand.NewSource(testSeed))), wind
}

// expectedColors returns the first n colors the painter's random source
// will pick.
func expectedColors(n int) []paint.Color {
	rng := rand.New(rand.NewSource(testSeed))
	colors := make([]paint.Color, n)
	for i := range colors {
		colors[i] = paint.RandomColor(rng)
	}
	return colors
}

func update(t *testing.T, p *Painter, events ...window.Event) {
	for _, ev := range events {
		quit, err := p.Update(ev)
		require.NoError(t, err)
		require.False(t, quit)
	}
}

func pixel(t *testing.T, s window.Surface, x, y int) uint32 {
	code, err := paint.Pixel(s, x, y)
	require.NoError(t, err)
	return code
}

func TestPressAndDrag(t *testing.T) {
	p, wind := newTestPainter(t, 8, 8, window.XRGB8888)
	colors := expectedColors(2)
	s := wind.MemorySurface()

	update(t, p,
		window.MouseButtonEvent{X: 0, Y: 0, Pressed: true},
		window.MouseMotionEvent{X: 1, Y: 0},
	)
	require.True(t, p.Painting())
	require.Equal(t, colors[0], p.Color())

	expected := s.MapRGB(colors[0].R, colors[0].G, colors[0].B)
	require.Equal(t, expected, pixel(t, s, 0, 0))
	require.Equal(t, expected, pixel(t, s, 1, 0))
	require.Equal(t, []image.Rectangle{
		image.Rect(0, 0, 1, 1),
		image.Rect(1, 0, 2, 1),
	}, s.DirtyRects())

	// The color was drawn once: the next press gets the second one.
	update(t, p,
		window.MouseMotionEvent{X: 2, Y: 1},
		window.MouseMotionEvent{X: 3, Y: 1},
		window.MouseButtonEvent{X: 3, Y: 1, Pressed: false},
		window.MouseButtonEvent{X: 5, Y: 5, Pressed: true},
	)
	require.Equal(t, expected, pixel(t, s, 2, 1))
	require.Equal(t, expected, pixel(t, s, 3, 1))
	require.Equal(t, colors[1], p.Color())
	require.Equal(t, s.MapRGB(colors[1].R, colors[1].G, colors[1].B), pixel(t, s, 5, 5))
}

func TestMotionWhileIdle(t *testing.T) {
	p, wind := newTestPainter(t, 4, 4, window.RGB565)
	s := wind.MemorySurface()

	update(t, p, window.MouseMotionEvent{X: 1, Y: 1})
	require.False(t, p.Painting())
	require.Empty(t, s.DirtyRects())

	update(t, p,
		window.MouseButtonEvent{X: 0, Y: 0, Pressed: true},
		window.MouseButtonEvent{X: 0, Y: 0, Pressed: false},
		window.MouseMotionEvent{X: 2, Y: 2},
	)
	require.False(t, p.Painting())
	require.Equal(t, []image.Rectangle{image.Rect(0, 0, 1, 1)}, s.DirtyRects())
	require.Zero(t, pixel(t, s, 2, 2))
}

func TestResize(t *testing.T) {
	p, wind := newTestPainter(t, 4, 4, window.XRGB8888, window.WithPadding(4))
	old := wind.MemorySurface()

	update(t, p,
		window.MouseButtonEvent{X: 1, Y: 1, Pressed: true},
		window.ResizeEvent{Width: 20, Height: 10},
	)
	require.True(t, p.Painting())

	s := wind.MemorySurface()
	require.NotSame(t, old, s)
	require.Same(t, s, p.Surface())
	require.Equal(t, 20, s.Width())
	require.Equal(t, 20*4+4, s.Pitch())

	// (15, 8) lies outside of the old surface.
	update(t, p, window.MouseMotionEvent{X: 15, Y: 8})
	c := p.Color()
	require.Equal(t, s.MapRGB(c.R, c.G, c.B), pixel(t, s, 15, 8))
	require.Equal(t, []image.Rectangle{image.Rect(15, 8, 16, 9)}, s.DirtyRects())
	require.Equal(t, []image.Rectangle{image.Rect(1, 1, 2, 2)}, old.DirtyRects())
}

func TestResizeFailure(t *testing.T) {
	p, wind := newTestPainter(t, 4, 4, window.XRGB8888)
	wind.ResizeError = errors.New("no memory")

	_, err := p.Update(window.ResizeEvent{Width: 8, Height: 8})
	var vmErr *VideoModeError
	require.ErrorAs(t, err, &vmErr)
	require.Equal(t, "resize", vmErr.Op)
	require.Equal(t, "Unable to resize video mode: no memory", err.Error())
}

func TestPaintErrorsAreNotFatal(t *testing.T) {
	p, wind := newTestPainter(t, 4, 4, window.RGB24)

	update(t, p,
		window.MouseButtonEvent{X: 1, Y: 1, Pressed: true},
		window.MouseMotionEvent{X: 100, Y: -3},
		window.MouseMotionEvent{X: 2, Y: 2},
	)
	require.True(t, p.Painting())
	require.Empty(t, wind.MemorySurface().DirtyRects())
}

func TestRun(t *testing.T) {
	p, wind := newTestPainter(t, 4, 4, window.XRGB8888)
	wind.Push(
		window.MouseButtonEvent{X: 0, Y: 0, Pressed: true},
		window.MouseMotionEvent{X: 1, Y: 0},
		window.QuitEvent{},
		window.MouseMotionEvent{X: 2, Y: 0},
	)

	require.NoError(t, p.Run())
	require.Len(t, wind.MemorySurface().DirtyRects(), 2)
}

func TestRunStopsOnResizeFailure(t *testing.T) {
	p, wind := newTestPainter(t, 4, 4, window.XRGB8888)
	wind.ResizeError = errors.New("no memory")
	wind.Push(window.ResizeEvent{Width: 8, Height: 8})
	wind.CloseEvents()

	err := p.Run()
	require.Error(t, err)
	require.Equal(t, 2, ExitCode(err))
}

func TestRunEndsWithEventStream(t *testing.T) {
	p, wind := newTestPainter(t, 4, 4, window.XRGB8888)
	wind.CloseEvents()
	require.NoError(t, p.Run())
}
