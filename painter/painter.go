package painter

import (
	"errors"
	"math/rand"

	"github.com/ushitora-anqou/aqpaint/paint"
	"github.com/ushitora-anqou/aqpaint/util"
	"github.com/ushitora-anqou/aqpaint/window"
)

// Painter owns the window's current surface and the brush state. A mouse
// press picks a new color and paints; dragging keeps painting with it until
// the button is released.
type Painter struct {
	wind     window.Window
	surface  window.Surface
	rng      *rand.Rand
	painting bool
	color    paint.Color
}

func NewPainter(wind window.Window, rng *rand.Rand) *Painter {
	return &Painter{
		wind:    wind,
		surface: wind.Surface(),
		rng:     rng,
	}
}

func (p *Painter) Painting() bool {
	return p.painting
}

func (p *Painter) Color() paint.Color {
	return p.color
}

func (p *Painter) Surface() window.Surface {
	return p.surface
}

// Run handles events until the window is asked to quit.
func (p *Painter) Run() error {
	for {
		quit, err := p.Update(p.wind.WaitEvent())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// Update handles a single event. It reports whether the program should quit.
func (p *Painter) Update(event window.Event) (bool, error) {
	switch ev := event.(type) {
	case window.QuitEvent:
		util.Trace("quit")
		return true, nil

	case window.ResizeEvent:
		util.Trace("resize: %dx%d", ev.Width, ev.Height)
		surface, err := p.wind.Resize(ev.Width, ev.Height)
		if err != nil {
			return false, &VideoModeError{Op: "resize", Err: err}
		}
		p.surface = surface

	case window.MouseButtonEvent:
		if !ev.Pressed {
			util.Trace("release: (%d, %d)", ev.X, ev.Y)
			p.painting = false
			break
		}
		p.painting = true
		p.color = paint.RandomColor(p.rng)
		util.Trace("press: (%d, %d) button=%d color=%v", ev.X, ev.Y, ev.Button, p.color)
		p.paint(ev.X, ev.Y)

	case window.MouseMotionEvent:
		if p.painting {
			p.paint(ev.X, ev.Y)
		}
	}

	return false, nil
}

func (p *Painter) paint(x, y int) {
	err := paint.Paint(p.surface, x, y, p.color)
	switch {
	case err == nil:
	case errors.Is(err, paint.ErrOutOfBounds):
		util.Trace("skip paint: %v", err)
	default:
		util.Warn("paint at (%d, %d): %v", x, y, err)
	}
}
