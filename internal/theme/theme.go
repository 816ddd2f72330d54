package theme

import "github.com/vovakirdan/neon-flyer/internal/core"

// Theme is one cosmetic variant of the game. It never affects the
// simulation.
type Theme struct {
	ID    string
	Title string

	Palette []core.Color // Skyline colors, cycled by segment index

	FlyerGlyph  rune
	FlyerColor  core.Color
	TrailGlyph  rune
	TrailColor  core.Color
	BlockGlyph  rune // Fill for skyline segments
	GroundRune  rune
	GroundColor core.Color

	HUDColor   core.Color // Score and status line
	PanelColor core.Color // Ready and game-over panel borders
}

// SegmentColor returns the palette entry for segment index i.
func (t Theme) SegmentColor(i int) core.Color {
	if len(t.Palette) == 0 {
		return core.ColorDefault
	}
	if i < 0 {
		i = -i
	}
	return t.Palette[i%len(t.Palette)]
}

func init() {
	Register(Theme{
		ID:          "neon",
		Title:       "Neon City",
		Palette:     []core.Color{core.ColorBrightMagenta, core.ColorBrightCyan, core.ColorViolet, core.ColorNeonBlue},
		FlyerGlyph:  '▶',
		FlyerColor:  core.ColorBrightWhite,
		TrailGlyph:  '·',
		TrailColor:  core.ColorNeonGreen,
		BlockGlyph:  '█',
		GroundRune:  '▔',
		GroundColor: core.ColorMagenta,
		HUDColor:    core.ColorBrightCyan,
		PanelColor:  core.ColorBrightMagenta,
	})

	Register(Theme{
		ID:          "sunset",
		Title:       "Sunset Strip",
		Palette:     []core.Color{core.ColorOrange, core.ColorMagenta, core.ColorViolet},
		FlyerGlyph:  '►',
		FlyerColor:  core.ColorBrightWhite,
		TrailGlyph:  '~',
		TrailColor:  core.ColorOrange,
		BlockGlyph:  '▓',
		GroundRune:  '▁',
		GroundColor: core.ColorOrange,
		HUDColor:    core.ColorOrange,
		PanelColor:  core.ColorMagenta,
	})

	Register(Theme{
		ID:          "mono",
		Title:       "Monochrome",
		Palette:     []core.Color{core.ColorLightGray, core.ColorGray, core.ColorDimGray},
		FlyerGlyph:  '>',
		FlyerColor:  core.ColorBrightWhite,
		TrailGlyph:  '-',
		TrailColor:  core.ColorGray,
		BlockGlyph:  '#',
		GroundRune:  '=',
		GroundColor: core.ColorGray,
		HUDColor:    core.ColorWhite,
		PanelColor:  core.ColorLightGray,
	})
}
