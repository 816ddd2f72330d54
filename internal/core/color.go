package core

// Color is a foreground color for a screen cell, an index into the
// ANSI 256-color table. Zero means the terminal default.
type Color uint8

// Colors used by the built-in themes.
const (
	ColorDefault       Color = 0
	ColorMagenta       Color = 5
	ColorCyan          Color = 6
	ColorWhite         Color = 7
	ColorGray          Color = 8
	ColorBrightMagenta Color = 13
	ColorBrightCyan    Color = 14
	ColorBrightWhite   Color = 15
	ColorNeonBlue      Color = 39
	ColorNeonGreen     Color = 49
	ColorViolet        Color = 129
	ColorOrange        Color = 208
	ColorDimGray       Color = 238
	ColorLightGray     Color = 250
)

// RGB returns an approximate 8-bit RGB triple for the color, used by
// graphical front ends that cannot address the terminal palette.
func (c Color) RGB() (r, g, b uint8) {
	switch {
	case c == ColorDefault:
		return 0xdd, 0xdd, 0xdd
	case c < 16:
		return ansiBase[c][0], ansiBase[c][1], ansiBase[c][2]
	case c >= 232:
		v := uint8(8 + 10*(int(c)-232))
		return v, v, v
	default:
		i := int(c) - 16
		return cubeLevel(i / 36), cubeLevel((i / 6) % 6), cubeLevel(i % 6)
	}
}

var ansiBase = [16][3]uint8{
	{0x00, 0x00, 0x00}, {0x80, 0x00, 0x00}, {0x00, 0x80, 0x00}, {0x80, 0x80, 0x00},
	{0x00, 0x00, 0x80}, {0x80, 0x00, 0x80}, {0x00, 0x80, 0x80}, {0xc0, 0xc0, 0xc0},
	{0x80, 0x80, 0x80}, {0xff, 0x00, 0x00}, {0x00, 0xff, 0x00}, {0xff, 0xff, 0x00},
	{0x00, 0x00, 0xff}, {0xff, 0x00, 0xff}, {0x00, 0xff, 0xff}, {0xff, 0xff, 0xff},
}

func cubeLevel(n int) uint8 {
	if n == 0 {
		return 0
	}
	return uint8(55 + 40*n)
}
