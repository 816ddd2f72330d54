// Package window runs the flyer in a desktop window with Ebitengine.
// The scene subpackage computes what to draw; this package paints it
// and adapts keyboard, mouse and touch input.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/neon-flyer/internal/config"
	"github.com/vovakirdan/neon-flyer/internal/core"
	"github.com/vovakirdan/neon-flyer/internal/game"
	"github.com/vovakirdan/neon-flyer/internal/input"
	"github.com/vovakirdan/neon-flyer/internal/overlay"
	"github.com/vovakirdan/neon-flyer/internal/platform/window/scene"
	"github.com/vovakirdan/neon-flyer/internal/theme"
)

const (
	defaultWidth  = 960
	defaultHeight = 540
	title         = "Neon Flyer"
)

var (
	skyColor             = color.RGBA{R: 0x0b, G: 0x06, B: 0x1a, A: 0xff}
	panelFill            = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	fontFace   font.Face = basicfont.Face7x13
	lineHeight           = 16
)

// Options configures the desktop front end.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Logger  *log.Logger // Optional
	Debug   bool        // Show TPS/FPS in the corner
}

// App implements ebiten.Game.
type App struct {
	game     *game.Game
	builder  *scene.Builder
	controls *input.Controls
	sub      *input.Subscription
	logger   *log.Logger
	debug    bool

	start         time.Time
	width, height int
}

// New wires a game to the scene builder and the input adapter.
func New(opts Options) (*App, error) {
	th, err := theme.Get(opts.Runtime.Theme)
	if err != nil {
		return nil, err
	}

	w, h := opts.Runtime.ScreenW, opts.Runtime.ScreenH
	if w <= 0 || h <= 0 {
		w, h = defaultWidth, defaultHeight
	}

	hud := &overlay.HUD{}
	builder := scene.NewBuilder(opts.Config, th, hud, w, h)
	best := 0
	onStatus := game.StatusFunc(func(s game.Status) {
		if s.Phase == game.PhaseGameOver && s.Score > best {
			best = s.Score
			builder.SetBest(best)
		}
		if opts.Logger != nil {
			opts.Logger.Debug("status", "phase", s.Phase, "score", s.Score)
		}
	})

	g, err := game.New(opts.Config, builder,
		game.WithSeed(opts.Runtime.Seed),
		game.WithStatusListener(hud.Overlay()),
		game.WithStatusListener(onStatus),
	)
	if err != nil {
		return nil, err
	}

	controls := input.New()
	return &App{
		game:     g,
		builder:  builder,
		controls: controls,
		sub:      controls.Attach(g.Impulse),
		logger:   opts.Logger,
		debug:    opts.Debug,
		start:    time.Now(),
		width:    w,
		height:   h,
	}, nil
}

// Update implements ebiten.Game. It is the display-refresh callback.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		a.sub.Close()
		return ebiten.Termination
	}

	if impulsePressed() {
		a.controls.Trigger()
	}

	a.game.Frame(float64(time.Since(a.start).Microseconds()) / 1000)
	return nil
}

func impulsePressed() bool {
	for _, k := range []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyEnter} {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	s := a.builder.Scene()

	screen.Fill(skyColor)
	fillRect(screen, s.Ground)
	for _, b := range s.Blocks {
		fillRect(screen, b)
	}
	for _, t := range s.Trail {
		fillRect(screen, t)
	}
	fillRect(screen, s.Flyer)

	text.Draw(screen, s.Status, fontFace, 8, lineHeight, rgba(s.StatusColor))

	if s.Panel != nil {
		drawPanel(screen, s, s.Panel)
	}

	if a.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), 8, s.Height-lineHeight)
	}
}

// Layout implements ebiten.Game. The logical size follows the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.game.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func fillRect(dst *ebiten.Image, r scene.Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(r.Color), false)
}

func drawPanel(dst *ebiten.Image, s *scene.Scene, p *scene.Panel) {
	lines := []string{p.Title}
	if p.Body != "" {
		lines = append(lines, p.Body)
	}
	lines = append(lines, p.Hint)

	w := 0
	for _, l := range lines {
		w = core.Max(w, font.MeasureString(fontFace, l).Round())
	}
	w += 48
	h := (len(lines)+1)*lineHeight + 16
	x := (s.Width - w) / 2
	y := (s.Height - h) / 2

	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), panelFill, false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 2, rgba(s.PanelColor), false)

	for i, l := range lines {
		lw := font.MeasureString(fontFace, l).Round()
		text.Draw(dst, l, fontFace, x+(w-lw)/2, y+(i+1)*lineHeight+8, rgba(s.PanelColor))
	}
}

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	app, err := New(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(app.width, app.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// Update runs at the refresh rate; Frame gates it down to the target fps
	ebiten.SetTPS(opts.Config.Loop.RefreshRate)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
