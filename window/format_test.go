package window

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapRGB(t *testing.T) {
	table := []struct {
		format   *PixelFormat
		r, g, b  uint8
		expected uint32
	}{
		{XRGB8888, 255, 0, 0, 0x00ff0000},
		{XRGB8888, 0x12, 0x34, 0x56, 0x00123456},
		{ARGB8888, 255, 0, 0, 0xffff0000},
		{ABGR8888, 1, 2, 3, 0xff030201},
		{RGB565, 255, 0, 0, 0xf800},
		{RGB565, 0, 255, 0, 0x07e0},
		{RGB565, 0, 0, 255, 0x001f},
		{RGB555, 255, 255, 255, 0x7fff},
		{RGB332, 255, 0, 0, 0xe0},
		{RGB332, 32, 64, 96, 0x29},
		{INDEX8, 0, 0, 0, 0},
		{INDEX8, 255, 255, 255, 255},
	}

	for _, entry := range table {
		got := entry.format.MapRGB(entry.r, entry.g, entry.b)
		require.Equal(t, entry.expected, got, "%v.MapRGB(%d, %d, %d)", entry.format, entry.r, entry.g, entry.b)
	}
}

func TestGetRGB(t *testing.T) {
	r, g, b := RGB565.GetRGB(0xf800)
	require.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})

	r, g, b = RGB332.GetRGB(0x03)
	require.Equal(t, [3]uint8{0, 0, 255}, [3]uint8{r, g, b})

	r, g, b = INDEX8.GetRGB(255)
	require.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{r, g, b})

	for _, f := range []*PixelFormat{XRGB8888, ARGB8888, ABGR8888} {
		r, g, b := f.GetRGB(f.MapRGB(0x12, 0x34, 0x56))
		require.Equal(t, [3]uint8{0x12, 0x34, 0x56}, [3]uint8{r, g, b}, f.Name)
	}
}

// Every code of a narrow format survives GetRGB followed by MapRGB.
func TestNarrowFormatsAreStable(t *testing.T) {
	for _, f := range []*PixelFormat{RGB332, RGB555, RGB565, INDEX8} {
		limit := uint32(1) << (8 * f.BytesPerPixel)
		if f == RGB555 {
			limit = 1 << 15
		}
		for code := uint32(0); code < limit; code++ {
			r, g, b := f.GetRGB(code)
			require.Equal(t, code, f.MapRGB(r, g, b), "%v: code %#x", f, code)
		}
	}
}

func TestPalette332(t *testing.T) {
	p := palette332()
	require.Len(t, p, 256)
	r, g, b, a := p[0x29].RGBA()
	require.Equal(t, uint32(0x2424), r) // 1 * 255 / 7
	require.Equal(t, uint32(0x4848), g) // 2 * 255 / 7
	require.Equal(t, uint32(0x5555), b) // 1 * 255 / 3
	require.Equal(t, uint32(0xffff), a)
}
