package window

import (
	"image/color"
	"math/bits"
)

// PixelFormat describes how an RGB triple is encoded in a surface. Packed
// formats are described by their channel masks; indexed formats carry a
// Palette and store the index of the closest entry.
type PixelFormat struct {
	Name          string
	BytesPerPixel int

	Rmask, Gmask, Bmask, Amask uint32

	Palette color.Palette
}

// Various predefined formats. RGB24 is listed for completeness; the pixel
// writer does not support 3-byte pixels.
var (
	INDEX8 = &PixelFormat{
		Name:          "INDEX8",
		BytesPerPixel: 1,
		Palette:       palette332(),
	}
	RGB332 = &PixelFormat{
		Name:          "RGB332",
		BytesPerPixel: 1,
		Rmask:         0xe0,
		Gmask:         0x1c,
		Bmask:         0x03,
	}
	RGB555 = &PixelFormat{
		Name:          "RGB555",
		BytesPerPixel: 2,
		Rmask:         0x7c00,
		Gmask:         0x03e0,
		Bmask:         0x001f,
	}
	RGB565 = &PixelFormat{
		Name:          "RGB565",
		BytesPerPixel: 2,
		Rmask:         0xf800,
		Gmask:         0x07e0,
		Bmask:         0x001f,
	}
	RGB24 = &PixelFormat{
		Name:          "RGB24",
		BytesPerPixel: 3,
		Rmask:         0xff0000,
		Gmask:         0x00ff00,
		Bmask:         0x0000ff,
	}
	XRGB8888 = &PixelFormat{
		Name:          "XRGB8888",
		BytesPerPixel: 4,
		Rmask:         0x00ff0000,
		Gmask:         0x0000ff00,
		Bmask:         0x000000ff,
	}
	ARGB8888 = &PixelFormat{
		Name:          "ARGB8888",
		BytesPerPixel: 4,
		Rmask:         0x00ff0000,
		Gmask:         0x0000ff00,
		Bmask:         0x000000ff,
		Amask:         0xff000000,
	}
	// ABGR8888 is R, G, B, A in memory on little-endian machines.
	ABGR8888 = &PixelFormat{
		Name:          "ABGR8888",
		BytesPerPixel: 4,
		Rmask:         0x000000ff,
		Gmask:         0x0000ff00,
		Bmask:         0x00ff0000,
		Amask:         0xff000000,
	}
)

func palette332() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.RGBA{
			R: uint8((i >> 5 & 0x07) * 0xff / 0x07),
			G: uint8((i >> 2 & 0x07) * 0xff / 0x07),
			B: uint8((i & 0x03) * 0xff / 0x03),
			A: 0xff,
		}
	}
	return p
}

func (f *PixelFormat) String() string { return f.Name }

// MapRGB returns the pixel code for an opaque color.
func (f *PixelFormat) MapRGB(r, g, b uint8) uint32 {
	if f.Palette != nil {
		return uint32(f.Palette.Index(color.RGBA{r, g, b, 0xff}))
	}
	return packChannel(f.Rmask, r) | packChannel(f.Gmask, g) | packChannel(f.Bmask, b) | f.Amask
}

// GetRGB is the inverse of MapRGB, up to the precision of the format.
func (f *PixelFormat) GetRGB(pixel uint32) (r, g, b uint8) {
	if f.Palette != nil {
		if int(pixel) >= len(f.Palette) {
			return 0, 0, 0
		}
		cr, cg, cb, _ := f.Palette[pixel].RGBA()
		return uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8)
	}
	return unpackChannel(f.Rmask, pixel), unpackChannel(f.Gmask, pixel), unpackChannel(f.Bmask, pixel)
}

func packChannel(mask uint32, v uint8) uint32 {
	if mask == 0 {
		return 0
	}
	shift := bits.TrailingZeros32(mask)
	width := bits.OnesCount32(mask)
	if width >= 8 {
		return uint32(v) << shift & mask
	}
	return uint32(v) >> (8 - width) << shift & mask
}

func unpackChannel(mask, pixel uint32) uint8 {
	if mask == 0 {
		return 0
	}
	shift := bits.TrailingZeros32(mask)
	width := bits.OnesCount32(mask)
	v := (pixel & mask) >> shift
	if width >= 8 {
		return uint8(v >> (width - 8))
	}
	// Stretch to the full 0-255 range so that the maximum maps to 0xff.
	return uint8(v * 0xff / (1<<width - 1))
}
