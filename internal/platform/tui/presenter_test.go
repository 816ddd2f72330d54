package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/neon-flyer/internal/config"
	"github.com/vovakirdan/neon-flyer/internal/game"
	"github.com/vovakirdan/neon-flyer/internal/overlay"
	"github.com/vovakirdan/neon-flyer/internal/theme"
)

func newTestPresenter(t *testing.T) (*Presenter, *overlay.HUD, theme.Theme) {
	t.Helper()
	th, err := theme.Get("neon")
	if err != nil {
		t.Fatal(err)
	}
	hud := &overlay.HUD{}
	return NewPresenter(config.Default(), th, hud, 80, 24), hud, th
}

func playingFrame(y float64) game.Frame {
	return game.Frame{
		Flyer:  game.FlyerPose{Y: y},
		Status: game.Status{Phase: game.PhasePlaying},
	}
}

func TestPresenterDrawsFlyer(t *testing.T) {
	p, _, th := newTestPresenter(t)

	p.Render(playingFrame(0))

	cx, cy := p.viewport.Cell(config.Default().Scroller.ScoreLine, 0)
	cell := p.Screen().GetCell(cx, cy+hudRows)
	if cell.Rune != th.FlyerGlyph {
		t.Errorf("cell (%d,%d) = %q, expected flyer %q", cx, cy+hudRows, cell.Rune, th.FlyerGlyph)
	}
	if cell.Color != th.FlyerColor {
		t.Errorf("flyer color = %d, expected %d", cell.Color, th.FlyerColor)
	}
}

func TestPresenterFlyerRisesOnScreen(t *testing.T) {
	p, _, th := newTestPresenter(t)

	rowOf := func() int {
		s := p.Screen()
		for y := 0; y < s.Height(); y++ {
			if strings.ContainsRune(s.Row(y), th.FlyerGlyph) {
				return y
			}
		}
		return -1
	}

	p.Render(playingFrame(-2))
	low := rowOf()
	p.Render(playingFrame(6))
	high := rowOf()

	if low < 0 || high < 0 {
		t.Fatalf("flyer not found (low=%d high=%d)", low, high)
	}
	if high >= low {
		t.Errorf("higher flyer drawn on row %d, not above row %d", high, low)
	}
}

func TestPresenterGround(t *testing.T) {
	p, _, th := newTestPresenter(t)
	p.Render(playingFrame(0))

	_, gy := p.viewport.Cell(0, config.Default().Flyer.Floor)
	row := p.Screen().Row(gy + hudRows)
	if strings.Trim(row, string(th.GroundRune)) != "" {
		t.Errorf("ground row = %q, expected only %q", row, th.GroundRune)
	}
}

func TestPresenterTrailIsBounded(t *testing.T) {
	p, _, th := newTestPresenter(t)

	for i := 0; i < 3*trailLength; i++ {
		p.Render(playingFrame(0))
	}

	count := 0
	s := p.Screen()
	for y := 0; y < s.Height(); y++ {
		count += strings.Count(s.Row(y), string(th.TrailGlyph))
	}
	if count != trailLength-1 {
		t.Errorf("trail cells = %d, expected %d", count, trailLength-1)
	}
}

func TestPresenterSegmentPalette(t *testing.T) {
	p, _, th := newTestPresenter(t)
	cfg := config.Default()

	fr := playingFrame(6)
	fr.Segments = []game.SegmentView{{Index: 1, WorldX: 8, Height: 4}}
	p.Render(fr)

	cx, cy := p.viewport.Cell(8, cfg.Flyer.Floor+1)
	cell := p.Screen().GetCell(cx, cy+hudRows)
	if cell.Rune != th.BlockGlyph {
		t.Errorf("segment cell = %q, expected %q", cell.Rune, th.BlockGlyph)
	}
	if cell.Color != th.SegmentColor(1) {
		t.Errorf("segment color = %d, expected %d", cell.Color, th.SegmentColor(1))
	}
}

func TestPresenterHUDAndPanels(t *testing.T) {
	p, hud, _ := newTestPresenter(t)
	o := hud.Overlay()
	p.SetBest(30)

	ready := game.Status{Phase: game.PhaseReady}
	o.StatusChanged(ready)
	p.Render(game.Frame{Status: ready})
	if !strings.Contains(p.Screen().String(), "NEON FLYER") {
		t.Error("ready panel missing")
	}
	if !strings.Contains(p.Screen().Row(0), "BEST 30") {
		t.Errorf("status line = %q, expected best score", p.Screen().Row(0))
	}

	over := game.Status{Phase: game.PhaseGameOver, Score: 12}
	o.StatusChanged(over)
	p.Render(game.Frame{Status: over})
	screen := p.Screen().String()
	if !strings.Contains(screen, "GAME OVER") || !strings.Contains(screen, "Score: 12") {
		t.Errorf("game over panel missing:\n%s", screen)
	}
	if strings.Contains(screen, "NEON FLYER") {
		t.Error("ready panel still drawn during game over")
	}
	if !strings.Contains(p.Screen().Row(0), "SCORE 12") {
		t.Errorf("status line = %q, expected score 12", p.Screen().Row(0))
	}
}

func TestPresenterResize(t *testing.T) {
	p, _, _ := newTestPresenter(t)

	p.Resize(120, 40)

	if p.Screen().Width() != 120 || p.Screen().Height() != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", p.Screen().Width(), p.Screen().Height())
	}
	if p.viewport.Cols != 120 || p.viewport.Rows != 40-hudRows {
		t.Errorf("viewport = %dx%d, expected 120x%d", p.viewport.Cols, p.viewport.Rows, 40-hudRows)
	}

	// Tiny terminals must not panic
	p.Resize(3, 2)
	p.Render(playingFrame(0))
}
