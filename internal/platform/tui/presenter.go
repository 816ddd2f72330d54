package tui

import (
	"fmt"

	"github.com/vovakirdan/neon-flyer/internal/config"
	"github.com/vovakirdan/neon-flyer/internal/core"
	"github.com/vovakirdan/neon-flyer/internal/game"
	"github.com/vovakirdan/neon-flyer/internal/overlay"
	"github.com/vovakirdan/neon-flyer/internal/theme"
)

// Layout constants
const (
	trailLength  = 20  // Past flyer heights drawn behind it
	hudRows      = 1   // Status line above the playfield
	blockWidth   = 0.5 // Segment width as a fraction of spacing
	worldMarginY = 1.0 // Extra world units above ceiling and below floor
	minFieldRows = 4
)

// Presenter draws frames into a character Screen. It implements
// game.Presenter and game.Resizer.
type Presenter struct {
	screen   *core.Screen
	theme    theme.Theme
	hud      *overlay.HUD
	viewport core.Viewport
	cfg      config.Config

	trail    []float64 // Ring of recent flyer heights, newest at trailPos-1
	trailPos int
	trailLen int

	best int
}

var (
	_ game.Presenter = (*Presenter)(nil)
	_ game.Resizer   = (*Presenter)(nil)
)

// NewPresenter creates a presenter for a width×height cell area.
func NewPresenter(cfg config.Config, th theme.Theme, hud *overlay.HUD, width, height int) *Presenter {
	p := &Presenter{
		screen: core.NewScreen(width, height),
		theme:  th,
		hud:    hud,
		cfg:    cfg,
		trail:  make([]float64, trailLength),
	}
	p.fitViewport()
	return p
}

// Screen returns the buffer holding the last rendered frame.
func (p *Presenter) Screen() *core.Screen {
	return p.screen
}

// SetBest updates the session best shown in the status line.
func (p *Presenter) SetBest(best int) {
	p.best = best
}

// Resize implements game.Resizer.
func (p *Presenter) Resize(width, height int) {
	p.screen.Resize(width, height)
	p.fitViewport()
}

// fitViewport maps the recycle corridor and the flyer's vertical range
// onto the playfield below the status line.
func (p *Presenter) fitViewport() {
	sc := p.cfg.Scroller
	fl := p.cfg.Flyer
	rows := p.screen.Height() - hudRows
	if rows < minFieldRows {
		rows = minFieldRows
	}
	p.viewport = core.Viewport{
		MinX: sc.RecycleThreshold + sc.Spacing/2,
		MaxX: sc.RecycleThreshold + sc.TotalSpan() - sc.Spacing/2,
		MinY: fl.Floor - worldMarginY,
		MaxY: fl.Ceiling + worldMarginY,
		Cols: p.screen.Width(),
		Rows: rows,
	}
}

// Render implements game.Presenter.
func (p *Presenter) Render(fr game.Frame) {
	p.pushTrail(fr.Flyer.Y)

	p.screen.Clear()
	p.drawGround()
	p.drawSegments(fr.Segments)
	p.drawTrail()
	p.drawFlyer(fr.Flyer)
	p.drawHUD(fr.Status)
	p.drawPanels()
}

func (p *Presenter) pushTrail(y float64) {
	p.trail[p.trailPos] = y
	p.trailPos = (p.trailPos + 1) % len(p.trail)
	if p.trailLen < len(p.trail) {
		p.trailLen++
	}
}

// cell projects a world point to a screen cell below the status line.
func (p *Presenter) cell(x, y float64) (int, int) {
	cx, cy := p.viewport.Cell(x, y)
	return cx, cy + hudRows
}

func (p *Presenter) drawGround() {
	_, gy := p.cell(0, p.cfg.Flyer.Floor)
	p.screen.DrawHLine(0, gy, p.screen.Width(), p.theme.GroundRune, p.theme.GroundColor)
}

func (p *Presenter) drawSegments(segs []game.SegmentView) {
	half := p.cfg.Scroller.Spacing * blockWidth / 2
	floor := p.cfg.Flyer.Floor

	for _, s := range segs {
		x0, top := p.cell(s.WorldX-half, floor+s.Height)
		x1, bottom := p.cell(s.WorldX+half, floor)
		color := p.theme.SegmentColor(s.Index)
		// The ground row stays visible under each block
		p.screen.FillRect(core.NewRect(x0, top, x1-x0+1, bottom-top), p.theme.BlockGlyph, color)
	}
}

func (p *Presenter) drawTrail() {
	fx, _ := p.cell(p.cfg.Scroller.ScoreLine, 0)
	// Skip the newest sample; the flyer covers it
	for age := 1; age < p.trailLen; age++ {
		idx := (p.trailPos - 1 - age + len(p.trail)) % len(p.trail)
		_, ty := p.cell(0, p.trail[idx])
		p.screen.Set(fx-age, ty, p.theme.TrailGlyph, p.theme.TrailColor)
	}
}

func (p *Presenter) drawFlyer(pose game.FlyerPose) {
	fx, fy := p.cell(p.cfg.Scroller.ScoreLine, pose.Y)
	glyph := p.theme.FlyerGlyph
	// Nose up or down when banking hard
	switch {
	case pose.Pitch > 0.15:
		glyph = '↗'
	case pose.Pitch < -0.15:
		glyph = '↘'
	}
	p.screen.Set(fx, fy, glyph, p.theme.FlyerColor)
}

func (p *Presenter) drawHUD(st game.Status) {
	score := fmt.Sprint(st.Score)
	if p.hud != nil && p.hud.Score.Text() != "" {
		score = p.hud.Score.Text()
	}
	line := fmt.Sprintf(" SCORE %s   BEST %d   %s", score, p.best, st.Phase)
	p.screen.FillRect(core.NewRect(0, 0, p.screen.Width(), hudRows), ' ', core.ColorDefault)
	p.screen.DrawText(0, 0, line, p.theme.HUDColor)
}

func (p *Presenter) drawPanels() {
	if p.hud == nil {
		return
	}

	switch {
	case p.hud.Ready.Visible():
		p.drawPanel("NEON FLYER", "", "space / click to fly")
	case p.hud.GameOver.Visible():
		p.drawPanel("GAME OVER", p.hud.FinalScore.Text(), "space to continue")
	}
}

func (p *Presenter) drawPanel(title, body, hint string) {
	w := core.Max(len([]rune(hint)), core.Max(len([]rune(title)), len([]rune(body)))) + 6
	h := 5
	if body != "" {
		h++
	}
	r := p.screen.Bounds().Centered(w, h)

	p.screen.FillRect(r, ' ', core.ColorDefault)
	p.screen.DrawBox(r, p.theme.PanelColor)

	// The box is centered on the screen, so screen-centered lines sit inside it
	y := r.Y + 1
	p.screen.DrawTextCentered(y, title, p.theme.PanelColor)
	y++
	if body != "" {
		p.screen.DrawTextCentered(y+1, body, core.ColorBrightWhite)
		y++
	}
	p.screen.DrawTextCentered(y+1, hint, core.ColorGray)
}
