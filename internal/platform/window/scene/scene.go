// Package scene turns game frames into resolution-independent pixel
// geometry. It implements game.Presenter without touching any graphics
// API, so graphical front ends only have to paint the result.
package scene

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/neon-flyer/internal/config"
	"github.com/vovakirdan/neon-flyer/internal/core"
	"github.com/vovakirdan/neon-flyer/internal/game"
	"github.com/vovakirdan/neon-flyer/internal/overlay"
	"github.com/vovakirdan/neon-flyer/internal/theme"
)

const (
	hudHeight    = 20.0 // Pixels reserved for the status line
	flyerSize    = 0.6  // World units
	blockWidth   = 0.5  // Fraction of spacing
	worldMarginY = 1.0
	trailLength  = 20
)

// Rect is a filled, colored rectangle in pixels.
type Rect struct {
	X, Y, W, H float64
	Color      core.Color
}

// Panel is a centered message box.
type Panel struct {
	Title string
	Body  string
	Hint  string
}

// Scene is everything to paint for one frame.
type Scene struct {
	Width, Height int
	Ground        Rect
	Blocks        []Rect
	Trail         []Rect
	Flyer         Rect
	FlyerRoll     float64 // Radians, for front ends that rotate sprites
	Status        string
	StatusColor   core.Color
	Panel         *Panel
	PanelColor    core.Color
}

// Builder implements game.Presenter and game.Resizer.
type Builder struct {
	cfg      config.Config
	theme    theme.Theme
	hud      *overlay.HUD
	viewport core.Viewport
	scene    Scene
	trail    []float64
	best     int
}

var (
	_ game.Presenter = (*Builder)(nil)
	_ game.Resizer   = (*Builder)(nil)
)

// NewBuilder creates a builder for a width×height pixel surface.
func NewBuilder(cfg config.Config, th theme.Theme, hud *overlay.HUD, width, height int) *Builder {
	b := &Builder{cfg: cfg, theme: th, hud: hud}
	b.Resize(width, height)
	return b
}

// Scene returns the last built scene. It is overwritten by Render.
func (b *Builder) Scene() *Scene {
	return &b.scene
}

// SetBest updates the session best shown in the status line.
func (b *Builder) SetBest(best int) {
	b.best = best
}

// Resize implements game.Resizer.
func (b *Builder) Resize(width, height int) {
	sc := b.cfg.Scroller
	fl := b.cfg.Flyer
	b.scene.Width = width
	b.scene.Height = height
	b.viewport = core.Viewport{
		MinX: sc.RecycleThreshold + sc.Spacing/2,
		MaxX: sc.RecycleThreshold + sc.TotalSpan() - sc.Spacing/2,
		MinY: fl.Floor - worldMarginY,
		MaxY: fl.Ceiling + worldMarginY,
		Cols: width,
		Rows: core.Max(height-int(hudHeight), 1),
	}
}

// Render implements game.Presenter.
func (b *Builder) Render(fr game.Frame) {
	s := &b.scene

	if len(b.trail) == trailLength {
		b.trail = append(b.trail[:0], b.trail[1:]...)
	}
	b.trail = append(b.trail, fr.Flyer.Y)

	_, groundY := b.project(0, b.cfg.Flyer.Floor)
	s.Ground = Rect{X: 0, Y: groundY, W: float64(s.Width), H: float64(s.Height) - groundY, Color: b.theme.GroundColor}

	half := b.cfg.Scroller.Spacing * blockWidth / 2
	s.Blocks = s.Blocks[:0]
	for _, seg := range fr.Segments {
		x0, top := b.project(seg.WorldX-half, b.cfg.Flyer.Floor+seg.Height)
		x1, _ := b.project(seg.WorldX+half, b.cfg.Flyer.Floor)
		s.Blocks = append(s.Blocks, Rect{X: x0, Y: top, W: x1 - x0, H: groundY - top, Color: b.theme.SegmentColor(seg.Index)})
	}

	fw := flyerSize * b.viewport.ScaleX()
	fh := flyerSize * b.viewport.ScaleY()
	line := b.cfg.Scroller.ScoreLine

	s.Trail = s.Trail[:0]
	// Oldest samples sit furthest behind the flyer
	for i, y := range b.trail[:len(b.trail)-1] {
		age := len(b.trail) - 1 - i
		tx, ty := b.project(line, y)
		size := fh / 3
		s.Trail = append(s.Trail, Rect{X: tx - float64(age)*fw/2 - size/2, Y: ty - size/2, W: size, H: size, Color: b.theme.TrailColor})
	}

	fx, fy := b.project(line, fr.Flyer.Y)
	s.Flyer = Rect{X: fx - fw/2, Y: fy - fh/2, W: fw, H: fh, Color: b.theme.FlyerColor}
	s.FlyerRoll = fr.Flyer.Roll

	score := strconv.Itoa(fr.Status.Score)
	if b.hud != nil && b.hud.Score.Text() != "" {
		score = b.hud.Score.Text()
	}
	s.Status = fmt.Sprintf("SCORE %s   BEST %d   %s", score, b.best, fr.Status.Phase)
	s.StatusColor = b.theme.HUDColor

	s.Panel = nil
	s.PanelColor = b.theme.PanelColor
	if b.hud != nil {
		switch {
		case b.hud.Ready.Visible():
			s.Panel = &Panel{Title: "NEON FLYER", Hint: "space / click to fly"}
		case b.hud.GameOver.Visible():
			s.Panel = &Panel{Title: "GAME OVER", Body: b.hud.FinalScore.Text(), Hint: "space to continue"}
		}
	}
}

// project maps world coordinates to pixels below the status line.
func (b *Builder) project(x, y float64) (float64, float64) {
	px, py := b.viewport.Project(x, y)
	return px, py + hudHeight
}
