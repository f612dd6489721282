// Package paint writes single pixels into a window.Surface.
package paint

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"

	"github.com/ushitora-anqou/aqpaint/constant"
	"github.com/ushitora-anqou/aqpaint/window"
)

var (
	ErrOutOfBounds       = errors.New("Pixel is out of bounds")
	ErrUnsupportedFormat = errors.New("Unsupported pixel format")
)

type Color struct {
	R, G, B uint8
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RandomColor picks every channel independently from the multiples of
// COLOR_STEP between COLOR_STEP and COLOR_STEP*COLOR_LEVELS, which excludes
// both black and white.
func RandomColor(rng *rand.Rand) Color {
	channel := func() uint8 {
		return uint8((rng.Intn(constant.COLOR_LEVELS) + 1) * constant.COLOR_STEP)
	}
	r := channel()
	g := channel()
	b := channel()
	return Color{r, g, b}
}

// Paint writes c at (x, y) and then asks the surface to show exactly that
// pixel. The surface is locked around the access when it requires so.
func Paint(s window.Surface, x, y int, c Color) error {
	if err := checkBounds(s, x, y); err != nil {
		return err
	}

	code := s.MapRGB(c.R, c.G, c.B)
	err := withLock(s, func(pixels []byte) error {
		off := y*s.Pitch() + x*s.BytesPerPixel()
		return putPixel(pixels, off, s.BytesPerPixel(), code)
	})
	if err != nil {
		return fmt.Errorf("%s (%d bytes per pixel): %w", s.FormatName(), s.BytesPerPixel(), err)
	}

	return s.UpdateRect(x, y, 1, 1)
}

// Pixel returns the code stored at (x, y).
func Pixel(s window.Surface, x, y int) (uint32, error) {
	if err := checkBounds(s, x, y); err != nil {
		return 0, err
	}

	var code uint32
	err := withLock(s, func(pixels []byte) error {
		var err error
		off := y*s.Pitch() + x*s.BytesPerPixel()
		code, err = getPixel(pixels, off, s.BytesPerPixel())
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("%s (%d bytes per pixel): %w", s.FormatName(), s.BytesPerPixel(), err)
	}
	return code, nil
}

func checkBounds(s window.Surface, x, y int) error {
	if x < 0 || x >= s.Width() || y < 0 || y >= s.Height() {
		return fmt.Errorf("%w: (%d, %d) not in %dx%d", ErrOutOfBounds, x, y, s.Width(), s.Height())
	}
	return nil
}

func withLock(s window.Surface, f func(pixels []byte) error) error {
	if s.MustLock() {
		if err := s.Lock(); err != nil {
			return err
		}
		defer s.Unlock()
	}
	return f(s.Pixels())
}

func putPixel(pixels []byte, off, bpp int, code uint32) error {
	if off < 0 || off+bpp > len(pixels) {
		return ErrOutOfBounds
	}
	switch bpp {
	case 1:
		pixels[off] = uint8(code)
	case 2:
		binary.NativeEndian.PutUint16(pixels[off:off+2], uint16(code))
	case 4:
		binary.NativeEndian.PutUint32(pixels[off:off+4], code)
	default:
		return ErrUnsupportedFormat
	}
	return nil
}

func getPixel(pixels []byte, off, bpp int) (uint32, error) {
	if off < 0 || off+bpp > len(pixels) {
		return 0, ErrOutOfBounds
	}
	switch bpp {
	case 1:
		return uint32(pixels[off]), nil
	case 2:
		return uint32(binary.NativeEndian.Uint16(pixels[off : off+2])), nil
	case 4:
		return binary.NativeEndian.Uint32(pixels[off : off+4]), nil
	}
	return 0, ErrUnsupportedFormat
}
