package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-flyer/internal/config"
	"github.com/vovakirdan/neon-flyer/internal/core"
	"github.com/vovakirdan/neon-flyer/internal/game"
	"github.com/vovakirdan/neon-flyer/internal/input"
	"github.com/vovakirdan/neon-flyer/internal/overlay"
	"github.com/vovakirdan/neon-flyer/internal/storage"
	"github.com/vovakirdan/neon-flyer/internal/theme"
)

// Options configures a terminal game.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Ledger  *storage.Ledger // Optional; rounds are not listed without it
	Logger  *log.Logger     // Optional
}

var (
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
)

// Model is the Bubble Tea model running one game.
type Model struct {
	game      *game.Game
	presenter *Presenter
	controls  *input.Controls
	sub       *input.Subscription
	ledger    *storage.Ledger
	logger    *log.Logger

	keys       KeyMap
	help       help.Model
	rounds     table.Model
	showRounds bool

	refreshRate int
	start       time.Time
	width       int
	height      int
	quitting    bool
}

// NewModel wires a game to a terminal presenter and the key/mouse adapter.
func NewModel(opts Options) (Model, error) {
	th, err := theme.Get(opts.Runtime.Theme)
	if err != nil {
		return Model{}, err
	}

	width, height := opts.Runtime.ScreenW, opts.Runtime.ScreenH
	hud := &overlay.HUD{}
	presenter := NewPresenter(opts.Config, th, hud, width, core.Max(height-1, 1))
	tracker := newRoundTracker(opts.Ledger, opts.Logger, presenter.SetBest)

	g, err := game.New(opts.Config, presenter,
		game.WithSeed(opts.Runtime.Seed),
		game.WithStatusListener(hud.Overlay()),
		game.WithStatusListener(tracker),
	)
	if err != nil {
		return Model{}, err
	}

	controls := input.New()
	h := help.New()
	h.Width = width

	m := Model{
		game:        g,
		presenter:   presenter,
		controls:    controls,
		sub:         controls.Attach(g.Impulse),
		ledger:      opts.Ledger,
		logger:      opts.Logger,
		keys:        DefaultKeyMap(),
		help:        h,
		rounds:      newRoundsTable(width, height),
		refreshRate: opts.Config.Loop.RefreshRate,
		start:       time.Now(),
		width:       width,
		height:      height,
	}
	return m, nil
}

// Status returns the game's phase and score.
func (m Model) Status() game.Status {
	return m.game.Status()
}

// Init starts the refresh loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.refreshRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if isImpulseClick(msg) && !m.showRounds {
			m.controls.Trigger()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.rounds = newRoundsTable(msg.Width, msg.Height)
		m.layout()
		if m.showRounds {
			m.loadRounds()
		}
		return m, nil

	case TickMsg:
		// The game is paused while the rounds table covers it
		if !m.showRounds {
			elapsed := time.Time(msg).Sub(m.start)
			m.game.Frame(float64(elapsed.Microseconds()) / 1000)
		}
		return m, tickCmd(m.refreshRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.sub.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.Rounds):
		m.showRounds = !m.showRounds
		if m.showRounds {
			m.loadRounds()
		}
		return m, nil
	}

	if m.showRounds {
		var cmd tea.Cmd
		m.rounds, cmd = m.rounds.Update(msg)
		return m, cmd
	}

	if key.Matches(msg, m.keys.Impulse) {
		m.controls.Trigger()
	}
	return m, nil
}

// layout gives the presenter everything except the help footer.
func (m *Model) layout() {
	footer := 1
	if m.help.ShowAll {
		for _, col := range m.keys.FullHelp() {
			footer = core.Max(footer, len(col))
		}
	}
	m.game.Resize(m.width, core.Max(m.height-footer, 1))
}

// loadRounds refreshes the rounds table from the ledger.
func (m *Model) loadRounds() {
	if m.ledger == nil {
		m.rounds.SetRows(nil)
		return
	}
	rounds, err := m.ledger.Rounds(maxRounds)
	if err != nil {
		if m.logger != nil {
			m.logger.Warn("could not load rounds", "error", err)
		}
		rounds = nil
	}
	m.rounds.SetRows(roundRows(rounds))
	m.rounds.GotoTop()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showRounds {
		return m.roundsView()
	}

	return RenderScreen(m.presenter.Screen()) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

func (m Model) roundsView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("SESSION ROUNDS"))
	b.WriteString("\n")

	if m.ledger != nil {
		if st, err := m.ledger.Stats(); err == nil {
			b.WriteString(fmt.Sprintf("rounds %d   best %d   avg %.1f   flown %s\n\n",
				st.Rounds, st.Best, st.AvgScore, st.PlayTime.Round(time.Second)))
		}
	}

	b.WriteString(m.rounds.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program for one game.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks count as impulses
	)

	_, err = p.Run()
	return err
}
